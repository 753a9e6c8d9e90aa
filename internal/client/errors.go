package client

import "errors"

var errNoUI = errors.New("client ui is not set")
