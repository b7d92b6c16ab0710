package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"signage-backend/internal/services"
)

type SignalController struct {
	Signals  *services.Signals
	Activity *services.ActivityLog
}

// Get is polled by viewers alongside the screen list.
func (sc *SignalController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Signals.State())
}

func (sc *SignalController) PulseReload(c *gin.Context) {
	state := sc.Signals.PulseReload()
	sc.Activity.Record(actorEmail(c), "signals.reload", nil)
	c.JSON(http.StatusOK, state)
}

func (sc *SignalController) ToggleNumbers(c *gin.Context) {
	state := sc.Signals.ToggleNumbers()
	sc.Activity.Record(actorEmail(c), "signals.toggle_numbers", gin.H{"show_numbers": state.ShowNumbers})
	c.JSON(http.StatusOK, state)
}
