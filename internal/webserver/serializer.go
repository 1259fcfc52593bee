package webserver

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

var apiJson = jsoniter.ConfigCompatibleWithStandardLibrary

// JsonSerializer is echo's JSON codec backed by json-iterator.
type JsonSerializer struct{}

func NewJsonSerializer() *JsonSerializer {
	return &JsonSerializer{}
}

func (s *JsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := apiJson.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *JsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := apiJson.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("invalid json payload: %v", err)).SetInternal(err)
	}
	return nil
}
