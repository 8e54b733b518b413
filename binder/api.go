package binder

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/adrrf/qubindr/api"
	"github.com/adrrf/qubindr/engine"
	"github.com/adrrf/qubindr/qpu"
)

// DefaultRequestShots is applied when a bind request leaves shots unset.
const DefaultRequestShots = 1024

type HttpApiBinder struct {
	api.HttpApi[Binder]
}

type welcome struct {
	Message       string `json:"message"`
	AvailableQPUs int    `json:"available_qpus"`
	TotalQPUs     int    `json:"total_qpus"`
}

func (a *HttpApiBinder) RootHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, welcome{
		Message:       "Welcome to the QuBindR API!",
		AvailableQPUs: len(a.Ref.Registry.Available()),
		TotalQPUs:     a.Ref.Registry.Len(),
	})
}

func (a *HttpApiBinder) GetQPUsHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, summaries(a.Ref.Registry.Available()))
}

func (a *HttpApiBinder) GetAllQPUsHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, summaries(a.Ref.Registry.Snapshot()))
}

func (a *HttpApiBinder) BindHandler(w http.ResponseWriter, r *http.Request) {
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()

	req := BindRequest{}
	if err := d.Decode(&req); err != nil {
		msg := fmt.Sprintf("Error unmarshalling body: %v", err)
		log.Print(msg)
		api.WriteError(w, http.StatusBadRequest, msg)
		return
	}
	if req.Shots == 0 {
		req.Shots = DefaultRequestShots
	}

	result, err := a.Ref.Bind(req)
	if err != nil {
		if errors.Is(err, engine.ErrNoFeasibleQPU) {
			api.WriteError(w, http.StatusNotFound, "No feasible QPUs found for the given constraints")
			return
		}
		api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("Error in binding process: %v", err))
		return
	}
	api.WriteJSON(w, http.StatusOK, *result)
}

func (a *HttpApiBinder) GetBindingsHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, a.Ref.Bindings())
}

func (a *HttpApiBinder) StatsHandler(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, a.Ref.Stats())
}

func summaries(qpus []*qpu.QPU) []qpu.Summary {
	views := make([]qpu.Summary, 0, len(qpus))
	for _, q := range qpus {
		views = append(views, q.Summary())
	}
	return views
}

func (httpApi *HttpApiBinder) InitRouter() {
	httpApi.Router = mux.NewRouter()

	httpApi.Router.HandleFunc("/", httpApi.RootHandler).Methods("GET")
	httpApi.Router.HandleFunc("/qpus", httpApi.GetQPUsHandler).Methods("GET")
	httpApi.Router.HandleFunc("/qpus/all", httpApi.GetAllQPUsHandler).Methods("GET")
	httpApi.Router.HandleFunc("/bind", httpApi.BindHandler).Methods("POST")
	httpApi.Router.HandleFunc("/bindings", httpApi.GetBindingsHandler).Methods("GET")
	httpApi.Router.HandleFunc("/stats", httpApi.StatsHandler).Methods("GET")
}

func (httpApi *HttpApiBinder) StartServer() error {
	httpApi.InitRouter()
	server := http.Server{
		Handler:      httpApi.Router,
		Addr:         fmt.Sprintf("%s:%d", httpApi.Address, httpApi.Port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Printf("Hosting on %s:%d\n", httpApi.Address, httpApi.Port)
	api.PrintEndpoints(httpApi.Router)
	return server.ListenAndServe()
}
