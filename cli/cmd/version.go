package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardnew/yex/pkg"
)

// Version prints the interpreter version.
type Version struct{}

// Run implements the command.
func (Version) Run(context.Context) error {
	fmt.Println(pkg.Name, strings.TrimSpace(pkg.Version))
	return nil
}
