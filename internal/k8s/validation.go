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

package k8s

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/chartkit-dev/chartkit/internal/naming"
)

// CheckContext runs the resolver over the context and reports every
// resolved value the orchestrator would reject, plus warnings for
// degenerate-but-tolerated inputs. The resolver itself never fails; this is
// where permissiveness gets surfaced.
func CheckContext(chartCtx naming.ChartContext) (warnings, errs []string) {
	if chartCtx.ChartName == "" && chartCtx.Overrides.NameOverride == "" {
		warnings = append(warnings, "no chart name or name override: resolved names are empty")
	}

	for what, value := range map[string]string{
		"name":                 naming.Name(chartCtx),
		"fullname":             naming.FullName(chartCtx),
		"service account name": naming.ServiceAccountName(chartCtx),
	} {
		if value == "" {
			continue
		}
		for _, msg := range validation.IsDNS1123Subdomain(value) {
			errs = append(errs, fmt.Sprintf("%s %q: %s", what, value, msg))
		}
	}

	for key, value := range naming.CommonLabels(chartCtx) {
		for _, msg := range validation.IsValidLabelValue(value) {
			errs = append(errs, fmt.Sprintf("label %s=%q: %s", key, value, msg))
		}
	}

	if strings.Contains(chartCtx.ChartVersion, "+") {
		warnings = append(warnings, "chart version carries build metadata; '+' is rewritten to '_' in the chart label")
	}

	return warnings, errs
}
