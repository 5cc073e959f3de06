package handlers

import (
	"net/http"

	"github.com/CorrelAid/form_intake/metrics"
	"github.com/CorrelAid/form_intake/models"
	"github.com/CorrelAid/form_intake/validators"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// FormsHandler serves GET /form and POST /submit.
type FormsHandler struct {
	dispatcher *Dispatcher
	metrics    *metrics.Collector
}

// NewFormsHandler wires the dispatcher to HTTP. collector may be nil.
func NewFormsHandler(dispatcher *Dispatcher, collector *metrics.Collector) *FormsHandler {
	return &FormsHandler{dispatcher: dispatcher, metrics: collector}
}

// ShowForm renders an empty form for ?type=, defaulting to a lead form.
func (h *FormsHandler) ShowForm(c *gin.Context) {
	view := h.dispatcher.ShowForm(c.DefaultQuery("type", models.FormTypeLead))
	h.metrics.ObserveRender(view.FormType)
	c.HTML(http.StatusOK, view.Template, view)
}

// SubmitForm binds both payloads from the posted form and lets the
// dispatcher decide which one counts.
func (h *FormsHandler) SubmitForm(c *gin.Context) {
	var lead models.LeadForm
	var feedback models.FeedbackForm
	if err := c.ShouldBindWith(&lead, binding.Form); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}
	if err := c.ShouldBindWith(&feedback, binding.Form); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	formType := c.PostForm("type")
	if formType == "" {
		formType = c.DefaultQuery("type", models.FormTypeLead)
	}

	view, err := h.dispatcher.SubmitForm(c.Request.Context(), formType,
		validators.NormalizeFeedback(feedback),
		validators.NormalizeLead(lead))
	if err != nil {
		h.metrics.ObserveSubmission(submittedType(formType), metrics.OutcomeError)
		_ = c.Error(err)
		return
	}

	outcome := metrics.OutcomeSuccess
	if view.Errors.HasErrors() {
		outcome = metrics.OutcomeInvalid
	}
	h.metrics.ObserveSubmission(view.FormType, outcome)
	c.HTML(http.StatusOK, view.Template, view)
}

// RegisterRoutes mounts the form routes. Middleware given in submit applies
// to POST /submit only.
func (h *FormsHandler) RegisterRoutes(r gin.IRouter, submit ...gin.HandlerFunc) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/form")
	})
	r.GET("/form", h.ShowForm)
	r.POST("/submit", append(submit, h.SubmitForm)...)
}

func submittedType(formType string) string {
	if isFeedback(formType) {
		return models.FormTypeFeedback
	}
	return models.FormTypeLead
}
