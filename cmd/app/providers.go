package main

import (
	"github.com/yanqian/cosmic-rhythm/internal/bootstrap"
	"github.com/yanqian/cosmic-rhythm/internal/domain/advisory"
	"github.com/yanqian/cosmic-rhythm/internal/domain/biorhythm"
	"github.com/yanqian/cosmic-rhythm/internal/domain/maya"
)

func provideBiorhythmService(e *bootstrap.Engines) biorhythm.Service {
	return e.Biorhythm
}

func provideMayaService(e *bootstrap.Engines) maya.Service {
	return e.Maya
}

func provideDressService(e *bootstrap.Engines) advisory.Service {
	return e.Dress
}
