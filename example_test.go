// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package editorconfig_test

import (
	"context"
	"errors"
	"fmt"
	"testing/fstest"

	"github.com/yourbase/editorconfig"
)

func ExampleResolve() {
	fsys := fstest.MapFS{
		"project/.editorconfig": {Data: []byte(`
root = true

[*]
charset = utf-8
end_of_line = lf

[*.go]
indent_style = tab
`)},
	}
	rules, err := editorconfig.Resolve(context.Background(), "/project/cmd/main.go", &editorconfig.Options{
		FS: fsys,
	})
	if err != nil {
		// handle error
	}
	for _, name := range rules.Names() {
		fmt.Printf("%s = %s\n", name, rules[name])
	}

	// Output:
	// charset = utf-8
	// end_of_line = lf
	// indent_size = tab
	// indent_style = tab
}

func ExampleError() {
	fsys := fstest.MapFS{
		".editorconfig": {Data: []byte("root = true\n[*]\nthis line is wrong\n")},
	}
	_, err := editorconfig.Resolve(context.Background(), "/main.go", &editorconfig.Options{FS: fsys})
	var resolveErr *editorconfig.Error
	if errors.As(err, &resolveErr) && resolveErr.Kind == editorconfig.SyntaxError {
		fmt.Printf("%s line %d: %s\n", resolveErr.File, resolveErr.Line, resolveErr.Kind.Message())
	}

	// Output:
	// /.editorconfig line 3: Failed to parse file.
}
