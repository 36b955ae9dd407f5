//go:build !windows

package main

import "errors"

func clipboardFiles() ([]string, error) {
	return nil, errors.New("reading file paths from the clipboard is only supported on windows")
}
