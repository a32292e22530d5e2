package handlers

import (
	"strconv"
	"strings"

	"produtos/internal/models"
	"produtos/internal/services"

	"github.com/gofiber/fiber/v2"
)

// formFields collects the submitted form fields, urlencoded or multipart.
// Only the first value of a repeated field is kept.
func formFields(c *fiber.Ctx) (map[string]string, error) {
	fields := make(map[string]string)

	if strings.HasPrefix(strings.ToLower(string(c.Request().Header.ContentType())), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		for key, values := range form.Value {
			if len(values) > 0 {
				fields[key] = values[0]
			}
		}
		return fields, nil
	}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if _, seen := fields[k]; !seen {
			fields[k] = string(value)
		}
	})
	return fields, nil
}

// parseValor converts the submitted price to a float.
func parseValor(raw string) (*float64, error) {
	valor, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, services.NewValidationError("valor", "must be a number")
	}
	return &valor, nil
}

// parseCreateForm reads the four required fields. Missing fields stay empty
// and are rejected by the service.
func parseCreateForm(c *fiber.Ctx) (models.ProductInput, error) {
	var input models.ProductInput
	fields, err := formFields(c)
	if err != nil {
		return input, err
	}

	input.Imagem = fields["imagem"]
	input.Nome = fields["nome"]
	input.Descricao = fields["descricao"]
	if raw, ok := fields["valor"]; ok && raw != "" {
		if input.Valor, err = parseValor(raw); err != nil {
			return input, err
		}
	}
	return input, nil
}

// parseUpdateForm reads the fields to change. Browsers submit untouched
// inputs as empty strings, so an empty field counts as not supplied.
func parseUpdateForm(c *fiber.Ctx) (models.ProductUpdate, error) {
	var update models.ProductUpdate
	fields, err := formFields(c)
	if err != nil {
		return update, err
	}

	present := func(key string) *string {
		if v, ok := fields[key]; ok && v != "" {
			return &v
		}
		return nil
	}
	update.Imagem = present("imagem")
	update.Nome = present("nome")
	update.Descricao = present("descricao")
	if raw := present("valor"); raw != nil {
		if update.Valor, err = parseValor(*raw); err != nil {
			return update, err
		}
	}
	return update, nil
}
