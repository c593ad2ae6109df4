package handlers

import (
	"net/http"
	"strings"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/pkg"

	"github.com/gin-gonic/gin"
)

// Actor identity comes from headers set by the authenticating front layer.
// Authentication itself is outside this service.
const (
	HeaderActorRole = "X-Actor-Role"
	HeaderActorName = "X-Actor-Name"
)

var errMissingActor = pkg.NewDomainErrorSimple("MISSING_ACTOR", "Actor role and name headers are required", http.StatusBadRequest)

func actorFrom(c *gin.Context) (entities.Role, string, bool) {
	role := entities.Role(strings.TrimSpace(c.GetHeader(HeaderActorRole)))
	name := strings.TrimSpace(c.GetHeader(HeaderActorName))
	if !role.Known() || name == "" {
		return "", "", false
	}
	return role, name, true
}

func rejectMissingActor(c *gin.Context) {
	c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
}
