package main

import (
	"os"
	"runtime"

	"glscenes/internal/app"
	"glscenes/internal/config"
	"glscenes/internal/demo"
	"glscenes/internal/demo/shapes"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	err := app.Main(app.Program{
		Name:     "shapes",
		Textured: true,
		New: func(s config.Settings, tex demo.Textures) (demo.Demo, error) {
			cam, err := app.NewCamera(s)
			if err != nil {
				return nil, err
			}
			return shapes.New(cam, tex, s.Shapes.Car), nil
		},
	}, os.Args[1:])
	if err != nil {
		closer.Fatalln(err)
	}
}
