package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// SuscriptorHandler maneja las peticiones HTTP del newsletter.
type SuscriptorHandler struct {
	uc       *usecase.SuscriptorUseCase
	configUC *usecase.ConfiguracionUseCase
}

// NewSuscriptorHandler construye el handler.
func NewSuscriptorHandler(uc *usecase.SuscriptorUseCase, configUC *usecase.ConfiguracionUseCase) *SuscriptorHandler {
	return &SuscriptorHandler{uc: uc, configUC: configUC}
}

// Suscribir godoc
// @Summary      Alta al newsletter
// @Description  Siempre responde 200; success indica el desenlace. Es parte
// @Description  del contrato con el storefront: el formulario no distingue
// @Description  entre fallos y trata todo como mensaje para el usuario.
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SuscribirRequest  true  "Email"
// @Success      200  {object}  dto.SuscribirResponse
// @Router       /api/newsletter [post]
func (h *SuscriptorHandler) Suscribir(c *fiber.Ctx) error {
	var in dto.SuscribirRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.SuscribirResponse{Success: false, Message: "Email inválido"})
	}
	nombre, _ := h.configUC.NombreTienda()
	switch h.uc.Suscribir(in.Email, nombre) {
	case usecase.SuscribirOK:
		return c.JSON(dto.SuscribirResponse{Success: true, Message: "¡Gracias por suscribirte!"})
	case usecase.SuscribirYaExistia:
		return c.JSON(dto.SuscribirResponse{Success: true, Message: "Ya estabas suscripto"})
	case usecase.SuscribirEmailInvalido:
		return c.JSON(dto.SuscribirResponse{Success: false, Message: "Email inválido"})
	default:
		return c.JSON(dto.SuscribirResponse{Success: false, Message: "No pudimos procesar la suscripción, probá de nuevo"})
	}
}

// ListAll lista todos los suscriptores (admin).
func (h *SuscriptorHandler) ListAll(c *fiber.Ctx) error {
	suscriptores, err := h.uc.ListAll()
	if err != nil {
		return responderError(c, err)
	}
	type fila struct {
		ID        string `json:"id"`
		Email     string `json:"email"`
		CreatedAt string `json:"createdAt"`
	}
	out := make([]fila, 0, len(suscriptores))
	for _, s := range suscriptores {
		out = append(out, fila{ID: s.ID, Email: s.Email, CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z07:00")})
	}
	return c.JSON(out)
}
