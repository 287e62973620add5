package agent

import (
	_ "embed"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ops-assistant/internal/shared/server/respond"
)

//go:embed web/index.html
var landingPage []byte

// Handler wires HTTP handlers to the agent.
type Handler struct {
	Agent *Agent
	Store RiskReader
}

// NewHandler constructs a Handler.
func NewHandler(agent *Agent, store RiskReader) *Handler {
	return &Handler{Agent: agent, Store: store}
}

type askRequest struct {
	Question   string  `json:"question"`
	CustomerID *string `json:"customer_id"`
	TopK       *int    `json:"top_k"`
}

// RegisterRoutes attaches the question endpoint and landing page to the engine root.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.home)
	r.POST("/ask", h.ask)
}

// RegisterAPIRoutes attaches read-only data routes to the API group.
func (h *Handler) RegisterAPIRoutes(rg *gin.RouterGroup) {
	rg.GET("/risk/summary", h.summary)
}

func (h *Handler) home(c *gin.Context) {
	respond.HTML(c, landingPage)
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be valid JSON", nil)
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", []map[string]string{
			{"field": "question", "issue": "required"},
		})
		return
	}

	q := Query{Question: req.Question}
	if req.CustomerID != nil {
		q.CustomerID = *req.CustomerID
	}
	if req.TopK != nil {
		q.TopK = *req.TopK
	}

	resp := h.Agent.Handle(q)
	c.Set("intent", string(resp.Intent))
	if q.CustomerID != "" {
		c.Set("customerId", q.CustomerID)
	}

	body := gin.H{"intent": resp.Intent}
	switch resp.Kind {
	case ResponseRecords:
		body["response"] = resp.Records
	default:
		body["response"] = resp.Text
	}
	respond.OK(c, body)
}

func (h *Handler) summary(c *gin.Context) {
	respond.OK(c, h.Store.Describe())
}
