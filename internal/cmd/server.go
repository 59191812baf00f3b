package main

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
)

func setupServer(handler http.Handler, port string) *http.Server {
	// Setup CORS middleware: browser clients load the board from anywhere.
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: c.Handler(handler),
	}
}
