package catalog

import (
	"slices"

	"github.com/hyh0309/cvue/pkg/models"
)

// builtinTemplates are the well-known templates installed by "cvue init".
var builtinTemplates = []models.Template{
	{Alias: "vue3-vite", Repo: "vuejs/create-vue", Description: "Vue 3 + Vite official template", IsDefault: true},
	{Alias: "vue2", Repo: "vuejs/vue-cli", Description: "Vue 2 official CLI template"},
	{Alias: "nuxt3", Repo: "nuxt/starter", Description: "Nuxt 3 starter template"},
	{Alias: "vue3-ts", Repo: "vuejs-templates/webpack-simple", Description: "Vue 3 + TypeScript template"},
	{Alias: "vue-element", Repo: "PanJiaChen/vue-element-admin", Description: "Admin dashboard template based on Element UI"},
}

// Builtin returns a copy of the built-in template list.
func Builtin() []models.Template {
	return slices.Clone(builtinTemplates)
}
