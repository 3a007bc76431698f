// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package display

import (
	"fmt"
	"html/template"
	"strings"
)

// ContainerID is the id of the element that receives rendered markup.
const ContainerID = "recipe-container"

// DefaultTitle is used for standalone pages when no title is given.
const DefaultTitle = "Recipes"

const cardHTML = `<article class="recipe-card">
  <h2 class="recipe-name">{{.Name}}</h2>
  <p class="recipe-cuisine">{{.Cuisine}}</p>
  <p class="recipe-difficulty difficulty-{{.DifficultyKey}}">{{.Difficulty}}</p>
  <p class="recipe-time">{{.Time}} minutes</p>
  <ul class="recipe-ingredients">
{{- range .Ingredients}}
    <li>{{.}}</li>
{{- end}}
  </ul>
  <p class="recipe-instructions">{{.Instructions}}</p>
</article>
`

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}}</title>
</head>
<body>
  <h1>{{.Title}}</h1>
  <div id="{{.ContainerID}}">
{{.Markup}}  </div>
</body>
</html>
`

var (
	cardTemplate = template.Must(template.New("card").Parse(cardHTML))
	pageTemplate = template.Must(template.New("page").Parse(pageHTML))
)

// Markup renders each card as an HTML fragment and concatenates them.
// All text fields are escaped.
func Markup(cards []Card) (string, error) {
	var sb strings.Builder
	for i := range cards {
		if err := cardTemplate.Execute(&sb, cards[i]); err != nil {
			return "", fmt.Errorf("failed to render card %q: %w", cards[i].Name, err)
		}
	}
	return sb.String(), nil
}

// Page wraps markup produced by Markup in a standalone HTML document whose
// container element has id ContainerID. markup is inserted verbatim.
func Page(title, markup string) (string, error) {
	if title == "" {
		title = DefaultTitle
	}

	var sb strings.Builder
	err := pageTemplate.Execute(&sb, struct {
		Title       string
		ContainerID string
		Markup      template.HTML
	}{
		Title:       title,
		ContainerID: ContainerID,
		//nolint:gosec // markup comes from Markup, which escapes every field
		Markup: template.HTML(markup),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render page: %w", err)
	}
	return sb.String(), nil
}
