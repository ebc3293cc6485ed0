// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

//go:build !unix

package jars

import (
	"errors"
	"os"
)

// mmapFile is not supported on this platform, the archive is read through
// the file handle instead.
func mmapFile(f *os.File, size int64) ([]byte, func() error, error) {
	return nil, nil, errors.New("memory mapping not supported on this platform")
}
