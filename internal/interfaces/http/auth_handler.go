package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/magazzino-api/internal/application/dto"
	"github.com/jhoicas/magazzino-api/internal/application/validation"
	"github.com/jhoicas/magazzino-api/internal/domain/entity"
	"github.com/jhoicas/magazzino-api/pkg/jwt"
)

// AuthHandler identidad del usuario y login de demostración.
// La autenticación real la hace el proveedor externo; aquí sólo se leen sus tokens.
type AuthHandler struct {
	secret     string
	issuer     string
	expMinutes int
	validator  *validation.Validator
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(secret, issuer string, expMinutes int, v *validation.Validator) *AuthHandler {
	return &AuthHandler{secret: secret, issuer: issuer, expMinutes: expMinutes, validator: v}
}

// DemoLogin godoc
// @Summary      Login de demostración (sólo development)
// @Description  Emite un token admin si el email contiene "admin"; operator en otro caso.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DemoLoginRequest  true  "email"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/demo-login [post]
func (h *AuthHandler) DemoLogin(c *fiber.Ctx) error {
	var in dto.DemoLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := h.validator.Struct(in); err != nil {
		return respondError(c, err)
	}
	role := entity.RoleOperator
	if strings.Contains(in.Email, "admin") {
		role = entity.RoleAdmin
	}
	// ID estable por email: la sesión del operador sobrevive a un nuevo login.
	id := jwt.Identity{
		UserID: uuid.NewSHA1(uuid.NameSpaceOID, []byte(in.Email)).String(),
		Email:  in.Email,
		Role:   role,
	}
	token, err := jwt.Generate(h.secret, id, h.issuer, h.expMinutes)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.LoginResponse{Token: token, User: toUserResponse(&entity.AuthUser{ID: id.UserID, Email: id.Email, Role: id.Role})})
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u := GetUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario no autenticado"})
	}
	return c.JSON(toUserResponse(u))
}

func toUserResponse(u *entity.AuthUser) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Email: u.Email, Role: u.Role, CanEdit: u.CanMutate()}
}
