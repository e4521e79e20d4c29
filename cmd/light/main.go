package main

import (
	"os"
	"runtime"

	"glscenes/internal/app"
	"glscenes/internal/config"
	"glscenes/internal/demo"
	"glscenes/internal/demo/light"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	defer closer.Close()

	err := app.Main(app.Program{
		Name:     "light",
		Textured: true,
		New: func(s config.Settings, tex demo.Textures) (demo.Demo, error) {
			cam, err := app.NewCamera(s)
			if err != nil {
				return nil, err
			}
			return light.New(cam, tex), nil
		},
	}, os.Args[1:])
	if err != nil {
		closer.Fatalln(err)
	}
}
