package handlers

import (
	"errors"

	"produtos/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// Response messages.
const (
	msgCreated  = "Produto cadastrado com sucesso"
	msgUpdated  = "Produto atualizado com sucesso"
	msgDeleted  = "Produto removido com sucesso"
	msgNotFound = "Produto não encontrado"

	errCreatePrefix = "Erro ao cadastrar produto: "
	errUpdatePrefix = "Erro ao atualizar produto: "
	errListPrefix   = "Erro ao listar produtos: "
	errGetPrefix    = "Erro ao buscar produto: "
	errDeletePrefix = "Erro ao remover produto: "
)

// statusFor maps a service error onto an HTTP status. Validation failures,
// constraint violations and any other storage error are client-visible 400s;
// only a missing product is a 404.
func statusFor(err error) int {
	if errors.Is(err, repositories.ErrProductNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}
