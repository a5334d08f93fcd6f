// Package models provides shared data models for cvue.
//
// # Templates
//
// A [Template] is one entry in the user's template catalog. It pairs a
// unique alias with a repository reference, which is either GitHub
// shorthand ("owner/name") or a full URL:
//
//	t := models.Template{
//	    Alias:       "vue3-vite",
//	    Repo:        "vuejs/create-vue",
//	    Description: "Vue 3 + Vite official template",
//	    IsDefault:   true,
//	}
//
// At most one template in a catalog carries IsDefault. The catalog package
// enforces that on every write.
package models
