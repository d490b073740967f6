// Package main demonstrates usage of the scg-variant package.
package main

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-variant/variant"
)

var (
	errNetwork         = variant.New("NetworkError")
	errInvalidEndpoint = variant.New("InvalidEndpoint")
)

func main() {
	// Payload construction
	e := errNetwork.New(map[string]any{
		"status":   500,
		"endpoint": "/api/users",
	})
	fmt.Println(e.Error(), e.Discriminant(), e.Payload())

	// Payload-less construction plus a wrapped cause via the builder
	cause := errors.New("no route to host")
	err := errNetwork.E(
		variant.WithField("endpoint", "/api/users"),
		variant.WithCause(cause),
	)
	fmt.Println(err, errors.Is(err, cause))

	// Discrimination by variant identity
	for _, e := range []error{errNetwork.New(), errInvalidEndpoint.New()} {
		switch {
		case errors.Is(e, errNetwork):
			fmt.Println("network:", e)
		case errors.Is(e, errInvalidEndpoint):
			fmt.Println("endpoint:", e)
		}
	}

	// Typed payload instead of a field map
	type timeoutInfo struct {
		Op      string
		Elapsed int
	}

	errTimeout := variant.NewTyped[timeoutInfo]("Timeout")
	te := errTimeout.New(timeoutInfo{Op: "fetch", Elapsed: 1500})
	fmt.Println(te, te.Payload().Op, te.Payload().Elapsed)
}
