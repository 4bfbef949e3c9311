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

package service

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	LISTEN_ADDRESS        = "LISTEN_ADDRESS"
	ORIGIN_ALLOWED        = "ORIGIN_ALLOWED"
	LOG_LEVEL             = "LOG_LEVEL"
	REVIEWS_URL           = "REVIEWS_URL"
	REVIEWS_FILE          = "REVIEWS_FILE"
	PAGE_TEMPLATE_PATH    = "PAGE_TEMPLATE_PATH"
	REVIEWS_FETCH_TIMEOUT = "REVIEWS_FETCH_TIMEOUT"
	REVIEWS_CACHE_TTL     = "REVIEWS_CACHE_TTL"
)

const envFile = ".env"

type SystemInfoService interface {
	Init() error
	GetListenAddress() string
	GetOriginAllowed() string
	GetLogLevel() string
	GetReviewsUrl() string
	GetReviewsFile() string
	GetPageTemplatePath() string
	GetReviewsFetchTimeout() time.Duration
	GetReviewsCacheTTL() time.Duration
}

func NewSystemInfoService() (SystemInfoService, error) {
	s := &systemInfoServiceImpl{
		systemInfoMap: make(map[string]interface{})}
	if err := s.Init(); err != nil {
		log.Error("Failed to read system info: " + err.Error())
		return nil, err
	}
	return s, nil
}

type systemInfoServiceImpl struct {
	systemInfoMap map[string]interface{}
}

func (g systemInfoServiceImpl) Init() error {
	// variables already present in the environment win over .env
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return err
	}

	g.setListenAddress()
	g.setOriginAllowed()
	g.setLogLevel()
	g.setReviewsUrl()
	g.setReviewsFile()
	g.setPageTemplatePath()
	if err := g.setReviewsFetchTimeout(); err != nil {
		return err
	}
	if err := g.setReviewsCacheTTL(); err != nil {
		return err
	}

	return nil
}

func (g systemInfoServiceImpl) setListenAddress() {
	listenAddr := os.Getenv(LISTEN_ADDRESS)
	if listenAddr == "" {
		listenAddr = ":8080"
	}
	g.systemInfoMap[LISTEN_ADDRESS] = listenAddr
}

func (g systemInfoServiceImpl) GetListenAddress() string {
	return g.systemInfoMap[LISTEN_ADDRESS].(string)
}

func (g systemInfoServiceImpl) setOriginAllowed() {
	g.systemInfoMap[ORIGIN_ALLOWED] = os.Getenv(ORIGIN_ALLOWED)
}

func (g systemInfoServiceImpl) GetOriginAllowed() string {
	return g.systemInfoMap[ORIGIN_ALLOWED].(string)
}

func (g systemInfoServiceImpl) setLogLevel() {
	logLevel := os.Getenv(LOG_LEVEL)
	if logLevel == "" {
		logLevel = "info"
	}
	g.systemInfoMap[LOG_LEVEL] = logLevel
}

func (g systemInfoServiceImpl) GetLogLevel() string {
	return g.systemInfoMap[LOG_LEVEL].(string)
}

func (g systemInfoServiceImpl) setReviewsUrl() {
	reviewsUrl := os.Getenv(REVIEWS_URL)
	if reviewsUrl == "" {
		reviewsUrl = "http://localhost:8080/reviews.json"
	}
	g.systemInfoMap[REVIEWS_URL] = reviewsUrl
}

func (g systemInfoServiceImpl) GetReviewsUrl() string {
	return g.systemInfoMap[REVIEWS_URL].(string)
}

func (g systemInfoServiceImpl) setReviewsFile() {
	reviewsFile := os.Getenv(REVIEWS_FILE)
	if reviewsFile == "" {
		reviewsFile = "./resources/reviews.json"
	}
	g.systemInfoMap[REVIEWS_FILE] = reviewsFile
}

func (g systemInfoServiceImpl) GetReviewsFile() string {
	return g.systemInfoMap[REVIEWS_FILE].(string)
}

func (g systemInfoServiceImpl) setPageTemplatePath() {
	templatePath := os.Getenv(PAGE_TEMPLATE_PATH)
	if templatePath == "" {
		templatePath = "./resources/index.html"
	}
	g.systemInfoMap[PAGE_TEMPLATE_PATH] = templatePath
}

func (g systemInfoServiceImpl) GetPageTemplatePath() string {
	return g.systemInfoMap[PAGE_TEMPLATE_PATH].(string)
}

func (g systemInfoServiceImpl) setReviewsFetchTimeout() error {
	timeout, err := getDurationEnv(REVIEWS_FETCH_TIMEOUT)
	if err != nil {
		return err
	}
	g.systemInfoMap[REVIEWS_FETCH_TIMEOUT] = timeout
	return nil
}

func (g systemInfoServiceImpl) GetReviewsFetchTimeout() time.Duration {
	return g.systemInfoMap[REVIEWS_FETCH_TIMEOUT].(time.Duration)
}

func (g systemInfoServiceImpl) setReviewsCacheTTL() error {
	ttl, err := getDurationEnv(REVIEWS_CACHE_TTL)
	if err != nil {
		return err
	}
	g.systemInfoMap[REVIEWS_CACHE_TTL] = ttl
	return nil
}

func (g systemInfoServiceImpl) GetReviewsCacheTTL() time.Duration {
	return g.systemInfoMap[REVIEWS_CACHE_TTL].(time.Duration)
}

func getDurationEnv(name string) (time.Duration, error) {
	value := os.Getenv(name)
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("env %s has invalid duration '%s': %w", name, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("env %s must not be negative", name)
	}
	return d, nil
}
