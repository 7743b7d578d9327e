package server

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMapEnvToGinMode(t *testing.T) {
	tests := []struct {
		environment string
		want        string
	}{
		{"development", gin.DebugMode},
		{"dev", gin.DebugMode},
		{"test", gin.TestMode},
		{"testing", gin.TestMode},
		{"production", gin.ReleaseMode},
		{"prod", gin.ReleaseMode},
		{"debug", gin.DebugMode},
		{"release", gin.ReleaseMode},
		{"", gin.DebugMode},
		{"staging", gin.DebugMode},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			assert.Equal(t, tt.want, mapEnvToGinMode(tt.environment))

			// Every mapped value must be a mode gin accepts; SetMode
			// panics on anything else.
			assert.NotPanics(t, func() {
				gin.SetMode(mapEnvToGinMode(tt.environment))
			})
		})
	}
	gin.SetMode(gin.TestMode)
}
