package qoi

import (
	"embed"

	"go_pixmap/pkg/ppm"
)

//go:embed all:data/*
var data embed.FS

// every fixture exists as <name>.qoi and as the expected <name>.ppm
var testFiles = []string{
	"gradient",
	"noise",
	"alpha",
}

// fixtures written with 3 channels by the reference encoder
var rgbFiles = []string{
	"gradient",
	"noise",
}

func loadPPM(name string) (*ppm.Image, error) {
	f, err := data.Open("data/" + name + ".ppm")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ppm.Decode(f)
}
