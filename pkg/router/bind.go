package router

import (
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
)

// bindRequest fills req from the query string for GET requests and from a
// JSON body otherwise. Query binding follows the json tags and supports
// string and int fields only.
func bindRequest(r *http.Request, req any) error {
	if r.Method != http.MethodGet {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return err
		}

		if len(body) == 0 {
			return nil
		}

		return json.Unmarshal(body, req)
	}

	v := reflect.ValueOf(req).Elem()
	for i := 0; i < v.NumField(); i++ {
		tag := v.Type().Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}

		queryValue := r.URL.Query().Get(name)
		if queryValue == "" {
			continue
		}

		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(queryValue)

		case reflect.Int:
			n, err := strconv.Atoi(queryValue)
			if err != nil {
				return err
			}

			v.Field(i).SetInt(int64(n))
		}
	}

	return nil
}
