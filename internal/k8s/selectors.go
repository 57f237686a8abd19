// Copyright 2025 The Chartkit Authors
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

// Package k8s provides functions to interact with Kubernetes objects managed
// under chartkit-resolved names and labels.
package k8s

import (
	"fmt"

	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"

	"github.com/chartkit-dev/chartkit/internal/naming"
)

// BuildSelector converts the resolved selector label set into a Kubernetes
// label selector string.
func BuildSelector(chartCtx naming.ChartContext) (string, error) {
	selector := labels.NewSelector()

	for key, value := range naming.SelectorLabels(chartCtx) {
		req, err := labels.NewRequirement(key, selection.Equals, []string{value})
		if err != nil {
			return "", fmt.Errorf("failed to create %s label requirement: %w", key, err)
		}
		selector = selector.Add(*req)
	}

	return selector.String(), nil
}
