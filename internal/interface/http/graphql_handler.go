package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"

	"github.com/gatherly/gatherly/pkg/response"
)

// GraphQLHandler serves the single /graphql endpoint.
type GraphQLHandler struct {
	Schema *graphql.Schema
	Logger *logrus.Logger
}

func NewGraphQLHandler(schema *graphql.Schema, logger *logrus.Logger) *GraphQLHandler {
	return &GraphQLHandler{Schema: schema, Logger: logger}
}

type graphqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Serve executes one GraphQL request. Resolver failures are part of the
// GraphQL response body; only a malformed request envelope is an HTTP error.
func (h *GraphQLHandler) Serve(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp := response.Error(c, http.StatusBadRequest, "invalid graphql request", err.Error())
		c.JSON(resp.Status, resp)
		return
	}

	res := h.Schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	if h.Logger != nil {
		for _, qe := range res.Errors {
			h.Logger.WithField("path", qe.Path).Warn(qe.Error())
		}
	}
	c.JSON(http.StatusOK, res)
}
