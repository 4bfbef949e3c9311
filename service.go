// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Netcracker/qubership-reviews-showcase/client"
	"github.com/Netcracker/qubership-reviews-showcase/controller"
	"github.com/Netcracker/qubership-reviews-showcase/exception"
	"github.com/Netcracker/qubership-reviews-showcase/page"
	"github.com/Netcracker/qubership-reviews-showcase/service"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func main() {
	readyChan := make(chan bool)
	systemInfoService, err := service.NewSystemInfoService()
	if err != nil {
		panic(err)
	}
	setupLogging(systemInfoService.GetLogLevel())

	pageTemplate, err := loadPageTemplate(systemInfoService.GetPageTemplatePath())
	if err != nil {
		log.Fatalf("%v", err)
	}

	reviewsClient := client.NewReviewsClient(systemInfoService.GetReviewsUrl(), systemInfoService.GetReviewsFetchTimeout())
	reviewCache := service.NewReviewCache(systemInfoService.GetReviewsCacheTTL())
	reviewService := service.NewReviewService(reviewsClient, reviewCache)
	pageService := service.NewPageService(reviewService, pageTemplate)
	schemaService := service.NewSchemaService()

	reviewsController := controller.NewReviewsController(pageService, reviewService, schemaService, systemInfoService.GetReviewsFile())
	healthController := controller.NewHealthController(readyChan)

	router := makeRouter(reviewsController, healthController)
	readyChan <- true
	close(readyChan)

	debug.SetGCPercent(30)

	srv := makeServer(systemInfoService, router)
	log.Fatalf("%v", srv.ListenAndServe())
}

func loadPageTemplate(path string) (*page.Template, error) {
	pageTemplate, err := page.LoadTemplate(path)
	if err != nil {
		return nil, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Code:    exception.PageTemplateUnavailable,
			Message: exception.PageTemplateUnavailableMsg,
			Params:  map[string]interface{}{"path": path, "error": err.Error()},
		}
	}
	return pageTemplate, nil
}

func makeRouter(reviewsController controller.ReviewsController, healthController controller.HealthController) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", reviewsController.GetPage).Methods(http.MethodGet)
	router.HandleFunc("/reviews/fragment", reviewsController.GetReviewsFragment).Methods(http.MethodGet)
	router.HandleFunc("/reviews.json", reviewsController.GetReviewsFile).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/reviews/random", reviewsController.GetRandomReviews).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/reviews/schema", reviewsController.GetReviewsSchema).Methods(http.MethodGet)

	router.HandleFunc("/live", healthController.HandleLiveRequest).Methods(http.MethodGet)
	router.HandleFunc("/ready", healthController.HandleReadyRequest).Methods(http.MethodGet)
	return router
}

func setupLogging(level string) {
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level '%s', using info", level)
		logLevel = log.InfoLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func makeServer(systemInfoService service.SystemInfoService, r *mux.Router) *http.Server {
	listenAddr := systemInfoService.GetListenAddress()

	log.Infof("Listen addr = %s", listenAddr)

	var corsOptions []handlers.CORSOption

	corsOptions = append(corsOptions, handlers.AllowedHeaders([]string{"Connection", "Accept-Encoding", "Content-Encoding", "X-Requested-With", "Content-Type"}))

	allowedOrigin := systemInfoService.GetOriginAllowed()
	if allowedOrigin != "" {
		corsOptions = append(corsOptions, handlers.AllowedOrigins([]string{allowedOrigin}))
	}
	corsOptions = append(corsOptions, handlers.AllowedMethods([]string{"GET", "HEAD", "OPTIONS"}))

	return &http.Server{
		Handler:      handlers.CompressHandler(handlers.CORS(corsOptions...)(r)),
		Addr:         listenAddr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}
}
