/*
Package factory generates lightweight record types at runtime.

Given an ordered list of field names, and optionally a type name, a Factory
returns a new record type. Its records hold one value per field and come with
a fixed set of operations: named and indexed access, equality and hashing,
iteration, nested lookup, conversion to slices and ordered maps, bounded
slicing and a readable display string.

# Concept

A record type is a schema, not a Go type. Field order is fixed when the type
is generated and is authoritative for everything order-sensitive. Named
types are registered in the factory's registry, so a name can only be used
once per factory.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/factory"
	)

	func main() {
		point, err := factory.New("Point", "x", "y")
		if err != nil {
			log.Fatal(err)
		}

		p, err := point.New(1, 2)
		if err != nil {
			log.Fatal(err)
		}

		x, _ := p.Get("x")
		fmt.Println(x)          // 1
		fmt.Println(p.Values()) // [1 2]
		fmt.Println(p)          // #<point Point x=1, y=2>
	}

Anonymous types skip registration:

	pair, _ := factory.New("left", "right")
	fmt.Println(pair.MustNew("a", "b")) // #<factory left="a", right="b">

Use NewFactory for an isolated registry, a namespace, a logger or metrics:

	f := factory.NewFactory(
		factory.WithNamespace("Geo"),
		factory.WithLogger(slog.Default()),
	)
	point, _ := f.Generate("Point", "x", "y")
	fmt.Println(point.MustNew(1, 2)) // #<point Geo::Point x=1, y=2>

# Errors

Every failure is a *record.Error. Match kinds with errors.Is against the
sentinels in package record (record.ErrIndexOutOfRange, ...) or read the
kind with record.KindOf.
*/
package factory
