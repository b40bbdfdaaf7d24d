package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bodgit/rgba"
)

var errBadSize = errors.New("size must be WIDTHxHEIGHT")

func parseSize(s string) (rgba.Pair, error) {
	var p rgba.Pair
	if n, err := fmt.Sscanf(s, "%dx%d", &p.X, &p.Y); err != nil || n != 2 || p.X < 0 || p.Y < 0 {
		return rgba.Pair{}, errBadSize
	}
	return p, nil
}

// parsePattern accepts either a dotted tuple or a bare alpha value.
func parsePattern(s string) (rgba.Value, error) {
	if strings.Contains(s, ".") {
		return rgba.ParseTuple(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return rgba.Integer(n), nil
}
