package main

import (
	"os"
	"runtime"

	"glscenes/internal/app"
	"glscenes/internal/config"
	"glscenes/internal/demo"
	"glscenes/internal/demo/hello"
	"glscenes/internal/graphics/geometry"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	err := app.Main(app.Program{
		Name: "hello",
		New: func(s config.Settings, _ demo.Textures) (demo.Demo, error) {
			prim, err := geometry.ParsePrimitive(s.Hello.Primitive)
			if err != nil {
				return nil, err
			}
			return hello.New(prim), nil
		},
	}, os.Args[1:])
	if err != nil {
		closer.Fatalln(err)
	}
}
