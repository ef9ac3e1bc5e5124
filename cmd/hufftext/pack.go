// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/kr/pretty"

	"github.com/ulikunitz/hufftext"
	"github.com/ulikunitz/hufftext/tree"
	"github.com/ulikunitz/hufftext/xlog"
)

type packer interface {
	outputPaths(path string) (outputPath, tmpPath string, err error)
	pack(w io.Writer, r io.Reader, opts *options) (n int64, err error)
}

const hufSuffix = ".huf"

// report writes the tree and the statistics for the text as requested by
// the options.
func report(text []byte, opts *options) error {
	if opts.printTree && len(text) > 0 {
		symbols := utf16.Encode([]rune(string(text)))
		t, err := tree.New(hufftext.Frequencies(symbols).Entries())
		if err != nil {
			return err
		}
		if err = tree.Fprint(opts.diag, t); err != nil {
			return err
		}
		for _, c := range t.Codes() {
			fmt.Fprintf(opts.diag, "%q\t%d\t%s\n",
				rune(c.Symbol), c.Freq, c.Bits)
		}
	}
	if opts.stats {
		st, err := hufftext.Analyze(string(text))
		if err != nil {
			return err
		}
		st.Codes = nil
		fmt.Fprintf(opts.diag, "%# v\n", pretty.Formatter(st))
	}
	return nil
}

type hufPacker struct{}

func (p hufPacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if path == "" {
		err = errors.New("path is empty")
		return
	}
	if strings.HasSuffix(path, hufSuffix) {
		err = fmt.Errorf("path %s has suffix %s -- ignored",
			path, hufSuffix)
		return
	}
	out = path + hufSuffix
	tmp = out + ".pack"
	return
}

func (p hufPacker) pack(w io.Writer, r io.Reader, opts *options) (n int64, err error) {
	if w == nil {
		panic("writer w is nil")
	}
	if r == nil {
		panic("reader r is nil")
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	data, err := marshalContainer(text)
	if err != nil {
		return 0, err
	}
	xlog.Debugf("compressed %d bytes into %d bytes", len(text), len(data))
	if err = report(text, opts); err != nil {
		return 0, err
	}
	k, err := w.Write(data)
	return int64(k), err
}

type hufUnpacker struct{}

func (u hufUnpacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if !strings.HasSuffix(path, hufSuffix) {
		err = fmt.Errorf("path %s has no suffix %s",
			path, hufSuffix)
		return
	}
	base := filepath.Base(path)
	if base == hufSuffix {
		err = fmt.Errorf(
			"path %s has only suffix %s as filename",
			path, hufSuffix)
		return
	}
	out = path[:len(path)-len(hufSuffix)]
	tmp = out + ".unpack"
	return
}

func (u hufUnpacker) pack(w io.Writer, r io.Reader, opts *options) (n int64, err error) {
	if w == nil {
		panic("writer w is nil")
	}
	if r == nil {
		panic("reader r is nil")
	}
	// pack actually unpacks
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	text, err := unmarshalContainer(data)
	if err != nil {
		return 0, err
	}
	xlog.Debugf("decompressed %d bytes into %d bytes", len(data),
		len(text))
	if err = report(text, opts); err != nil {
		return 0, err
	}
	k, err := w.Write(text)
	return int64(k), err
}

func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			if tmpPath != "-" {
				os.Remove(tmpPath)
			}
			os.Exit(7)
		}
	}()
	return quit
}

func packFile(pck packer, path, tmpPath string, opts *options) (err error) {
	// open reader
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		fi, err := os.Lstat(path)
		if err != nil {
			return err
		}
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("%s is not a regular file", path)
		}
		if r, err = os.Open(path); err != nil {
			return err
		}
		defer r.Close()
	}

	// open writer
	var w *os.File
	if tmpPath == "-" {
		w = os.Stdout
	} else {
		if opts.force {
			os.Remove(tmpPath)
		}
		w, err = os.OpenFile(tmpPath,
			os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := w.Close(); err == nil {
				err = cerr
			}
		}()
	}

	_, err = pck.pack(w, r, opts)
	return err
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError converts path error to an error message that is
// acceptable for hufftext users. PathError provides information about
// the command that has created an error. For instance Lstat informs that
// lstat detected that a file didn't exist this information is not
// relevant for users of the hufftext program. This function converts a
// path error into a generic error removing the operation information.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

func processFile(path string, opts *options) (err error) {
	var pck packer
	if opts.decompress {
		pck = hufUnpacker{}
	} else {
		pck = hufPacker{}
	}
	outputPath, tmpPath, err := pck.outputPaths(path)
	if err != nil {
		return err
	}
	if opts.stdout {
		outputPath, tmpPath = "-", "-"
	}
	if outputPath != "-" {
		_, err = os.Lstat(outputPath)
		if err == nil && !opts.force {
			return fmt.Errorf("file %s exists", outputPath)
		}
	}
	defer func() {
		if tmpPath != "-" {
			os.Remove(tmpPath)
		}
	}()
	quit := signalHandler(tmpPath)
	defer close(quit)

	if err = packFile(pck, path, tmpPath, opts); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			err = fmt.Errorf("%s: %w", path, err)
		}
		return err
	}
	if tmpPath != "-" && outputPath != "-" {
		if err = os.Rename(tmpPath, outputPath); err != nil {
			return err
		}
	}
	if !opts.keep && !opts.stdout && path != "-" {
		if err = os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}
