package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crimson-sun/verity/internal/model"
)

const homeMessage = "Fake News Detector API is running!"

// home godoc
// @Summary      Liveness banner
// @Tags         system
// @Produce      plain
// @Success      200  {string}  string  "Fake News Detector API is running!"
// @Router       / [get]
func (s *Server) home(c *gin.Context) {
	c.String(http.StatusOK, homeMessage)
}

// health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "verity",
	})
}

// modelInfo godoc
// @Summary      Describe the loaded model artifacts
// @Tags         system
// @Produce      json
// @Success      200  {object}  artifact.Info
// @Router       /model/info [get]
func (s *Server) modelInfo(c *gin.Context) {
	c.JSON(http.StatusOK, s.info)
}

// predict godoc
// @Summary      Classify news text
// @Description  Normalizes the text, vectorizes it and labels it FAKE or REAL.
// @Description  probability is the confidence in the returned label.
// @Tags         prediction
// @Accept       json
// @Produce      json
// @Param        request  body      model.PredictRequest  true  "Text to classify"
// @Success      200      {object}  model.Prediction
// @Failure      400      {object}  model.ErrorResponse
// @Failure      413      {object}  model.ErrorResponse
// @Failure      500      {object}  model.ErrorResponse
// @Router       /predict [post]
func (s *Server) predict(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxBodyBytes)

	var req model.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, model.ErrorResponse{Error: "request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	pred, err := s.predictor.Predict(req.Text)
	if err != nil {
		slog.Error("prediction failed", "trace_id", c.GetString(traceIDKey), "err", err)
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "prediction failed"})
		return
	}

	slog.Debug("prediction served",
		"trace_id", c.GetString(traceIDKey),
		"label", pred.Label,
		"probability", pred.Probability,
		"text_bytes", len(req.Text),
	)
	c.JSON(http.StatusOK, pred)
}
