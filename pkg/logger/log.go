package logger

import "go.uber.org/zap"

// NewLogger cria o logger padrão da aplicação: console + arquivo.
func NewLogger() *zap.Logger {
	dualConfig := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      []string{"stdout", "./logs/app.log"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	dualLogger, err := dualConfig.Build()
	if err != nil {
		panic(err)
	}

	return dualLogger
}

// Named devolve um logger filho para uma área específica (manutencao, consumo, ...).
func Named(base *zap.Logger, area string) *zap.Logger {
	return base.Named(area)
}
