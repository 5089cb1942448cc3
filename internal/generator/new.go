package generator

import (
	"github.com/Weerinrada/Dhamma/internal/logger"
)

type implGenerator struct {
	model  TextModel
	logger logger.Logger
}

// New creates a Generator on top of a generative text model.
func New(model TextModel, log logger.Logger) Generator {
	return &implGenerator{
		model:  model,
		logger: log,
	}
}
