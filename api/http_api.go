package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// HttpApi is the shared shape of an HTTP surface over some service REF.
type HttpApi[REF any] struct {
	Address string
	Port    int
	Ref     *REF
	Router  *mux.Router
}

func PrintEndpoints(r *mux.Router) {
	r.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return err
		}
		methods, err := route.GetMethods()
		if err != nil {
			return err
		}
		log.Printf("%v %s\n", methods, path)
		return nil
	})
}

// StandardResponse is the envelope every endpoint answers with.
type StandardResponse[R any] struct {
	HttpStatusCode int    `json:"status"`
	ErrorMsg       string `json:"error,omitempty"`
	Response       R      `json:"response,omitempty"`
}

func WriteJSON[R any](w http.ResponseWriter, status int, response R) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(StandardResponse[R]{
		HttpStatusCode: status,
		Response:       response,
	})
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(StandardResponse[any]{
		HttpStatusCode: status,
		ErrorMsg:       msg,
	})
}
