package rest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestQueryIDs(t *testing.T) {
	e := echo.New()
	ctx := func(query string) echo.Context {
		return e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/news?"+query, nil), httptest.NewRecorder())
	}

	assert.Nil(t, queryIDs(ctx(""), "topicId"))
	assert.Equal(t, 0, queryIDs(ctx("topicId="), "topicId").Len())
	assert.Equal(t, []string{"1", "2", "3"}, queryIDs(ctx("topicId=1,2&topicId=3&topicId=%202"), "topicId").Sorted())
}

func TestQueryIDs_LongList(t *testing.T) {
	ids := make([]string, 5000)
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i)
	}
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/v1/news?newsId="+strings.Join(ids, ","), nil), httptest.NewRecorder())

	assert.Equal(t, 5000, queryIDs(c, "newsId").Len())
}
