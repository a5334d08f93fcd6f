package catalog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hyh0309/cvue/pkg/models"
)

func ptr[T any](v T) *T { return &v }

func sample() Catalog {
	return Catalog{
		{Alias: "a", Repo: "o/a", Description: "first", IsDefault: true},
		{Alias: "b", Repo: "o/b", Description: "second"},
		{Alias: "c", Repo: "o/c", Description: "third"},
	}
}

func countDefaults(c Catalog) int {
	n := 0
	for _, t := range c {
		if t.IsDefault {
			n++
		}
	}
	return n
}

func TestFindByAlias(t *testing.T) {
	c := sample()
	got, ok := FindByAlias(c, "b")
	if !ok || got.Repo != "o/b" {
		t.Errorf("FindByAlias(b) = %+v, %v", got, ok)
	}
	if _, ok := FindByAlias(c, "B"); ok {
		t.Error("FindByAlias should match exactly")
	}
	if _, ok := FindByAlias(nil, "a"); ok {
		t.Error("FindByAlias on nil catalog should miss")
	}
}

func TestFindByAlias_FirstMatch(t *testing.T) {
	c := Catalog{{Alias: "x", Repo: "first"}, {Alias: "x", Repo: "second"}}
	got, _ := FindByAlias(c, "x")
	if got.Repo != "first" {
		t.Errorf("FindByAlias returned %q, want first match", got.Repo)
	}
}

func TestFindDefault(t *testing.T) {
	got, ok := FindDefault(sample())
	if !ok || got.Alias != "a" {
		t.Errorf("FindDefault = %+v, %v", got, ok)
	}
	if _, ok := FindDefault(Catalog{{Alias: "x"}}); ok {
		t.Error("FindDefault should miss when no default")
	}
}

func TestCatalog_Add(t *testing.T) {
	c := sample()
	nt := models.Template{Alias: "d", Repo: "o/d", Description: "fourth"}

	out, err := c.Add(nt)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if len(out) != 4 || out[3] != nt {
		t.Errorf("Add should append, got %+v", out)
	}
	if !out[0].IsDefault {
		t.Error("non-default add should keep the existing default")
	}
	if len(c) != 3 {
		t.Error("Add must not modify the receiver")
	}

	got, ok := FindByAlias(out, "d")
	if !ok || got != nt {
		t.Errorf("FindByAlias after Add = %+v, want %+v", got, nt)
	}
}

func TestCatalog_Add_Default(t *testing.T) {
	c := sample()
	out, err := c.Add(models.Template{Alias: "d", IsDefault: true})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if n := countDefaults(out); n != 1 {
		t.Fatalf("defaults = %d, want 1", n)
	}
	if d, _ := FindDefault(out); d.Alias != "d" {
		t.Errorf("default = %q, want d", d.Alias)
	}
	if !c[0].IsDefault {
		t.Error("Add must not modify the receiver's flags")
	}
}

func TestCatalog_Add_Duplicate(t *testing.T) {
	c := sample()
	out, err := c.Add(models.Template{Alias: "b", IsDefault: true})
	if !errors.Is(err, ErrTemplateExists) {
		t.Fatalf("error = %v, want ErrTemplateExists", err)
	}
	if !reflect.DeepEqual(out, c) {
		t.Error("failed Add should leave the catalog unchanged")
	}
}

func TestCatalog_Remove(t *testing.T) {
	c := sample()
	out, removed := c.Remove("b")
	if !removed {
		t.Fatal("Remove(b) should report removal")
	}
	if _, ok := FindByAlias(out, "b"); ok {
		t.Error("b still present after Remove")
	}
	if len(out) != 2 || out[0].Alias != "a" || out[1].Alias != "c" {
		t.Errorf("Remove should keep order, got %+v", out)
	}
	if len(c) != 3 {
		t.Error("Remove must not modify the receiver")
	}

	_, removed = c.Remove("zzz")
	if removed {
		t.Error("Remove of missing alias should report false")
	}
}

func TestCatalog_Update(t *testing.T) {
	c := sample()
	out, err := c.Update("b", Patch{Repo: ptr("new/b")})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	got, _ := FindByAlias(out, "b")
	if got.Repo != "new/b" || got.Description != "second" || got.IsDefault {
		t.Errorf("Update changed unexpected fields: %+v", got)
	}
	if c[1].Repo != "o/b" {
		t.Error("Update must not modify the receiver")
	}
}

func TestCatalog_Update_EmptyPatch(t *testing.T) {
	c := sample()
	out, err := c.Update("b", Patch{})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !reflect.DeepEqual(out, c) {
		t.Errorf("empty patch changed the catalog: %+v", out)
	}
	if !(Patch{}).IsEmpty() {
		t.Error("zero Patch should be empty")
	}
}

func TestCatalog_Update_SetDefault(t *testing.T) {
	out, err := sample().Update("c", Patch{IsDefault: ptr(true), Description: ptr("now default")})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if n := countDefaults(out); n != 1 {
		t.Fatalf("defaults = %d, want 1", n)
	}
	if d, _ := FindDefault(out); d.Alias != "c" || d.Description != "now default" {
		t.Errorf("default = %+v", d)
	}
}

func TestCatalog_Update_ClearDefault(t *testing.T) {
	out, err := sample().Update("a", Patch{IsDefault: ptr(false)})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if n := countDefaults(out); n != 0 {
		t.Errorf("defaults = %d, want 0", n)
	}
}

func TestCatalog_Update_NotFound(t *testing.T) {
	c := sample()
	out, err := c.Update("zzz", Patch{IsDefault: ptr(true)})
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("error = %v, want ErrTemplateNotFound", err)
	}
	if !reflect.DeepEqual(out, c) {
		t.Error("failed Update should return the original catalog")
	}
}

func TestCatalog_SingleDefaultInvariant(t *testing.T) {
	ops := []func(Catalog) Catalog{
		func(c Catalog) Catalog { out, _ := c.Add(models.Template{Alias: "n1", IsDefault: true}); return out },
		func(c Catalog) Catalog { out, _ := c.Update("b", Patch{IsDefault: ptr(true)}); return out },
		func(c Catalog) Catalog { out, _ := c.Add(models.Template{Alias: "n2", IsDefault: true}); return out },
		func(c Catalog) Catalog { out, _ := c.Update("n1", Patch{IsDefault: ptr(true)}); return out },
		func(c Catalog) Catalog { out, _ := c.Seed(Builtin(), true); return out },
		func(c Catalog) Catalog { out, _ := c.Update("c", Patch{IsDefault: ptr(true)}); return out },
	}

	c := sample()
	for i, op := range ops {
		c = op(c)
		if n := countDefaults(c); n != 1 {
			t.Fatalf("after op %d: defaults = %d, want 1", i, n)
		}
	}
}

func TestCatalog_Add_DefaultIntoEmpty(t *testing.T) {
	out, err := Catalog{}.Add(models.Template{Alias: "v1", Repo: "vuejs/core", IsDefault: true})
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if n := countDefaults(out); n != 1 {
		t.Errorf("defaults = %d, want 1", n)
	}
}

func TestCatalog_Seed(t *testing.T) {
	existing := Catalog{
		{Alias: "mine", Repo: "me/mine", IsDefault: true},
		{Alias: "nuxt3", Repo: "custom/nuxt", Description: "my nuxt"},
	}

	out, report := existing.Seed(Builtin(), false)

	if len(report.Skipped) != 1 || report.Skipped[0] != "nuxt3" {
		t.Errorf("Skipped = %v, want [nuxt3]", report.Skipped)
	}
	if len(report.Added) != 4 || len(report.Updated) != 0 {
		t.Errorf("Added = %v, Updated = %v", report.Added, report.Updated)
	}
	if !report.Changed() {
		t.Error("report should be Changed")
	}
	if got, _ := FindByAlias(out, "nuxt3"); got.Repo != "custom/nuxt" {
		t.Errorf("skipped template was overwritten: %+v", got)
	}
	if out[0].Alias != "mine" || out[1].Alias != "nuxt3" {
		t.Error("seed must not reorder existing templates")
	}
	if d, _ := FindDefault(out); d.Alias != "vue3-vite" {
		t.Errorf("default = %q, want vue3-vite", d.Alias)
	}
	if n := countDefaults(out); n != 1 {
		t.Errorf("defaults = %d, want 1", n)
	}
}

func TestCatalog_Seed_Force(t *testing.T) {
	existing := Catalog{{Alias: "nuxt3", Repo: "custom/nuxt", IsDefault: true}}

	out, report := existing.Seed(Builtin(), true)
	if len(report.Updated) != 1 || report.Updated[0] != "nuxt3" {
		t.Errorf("Updated = %v, want [nuxt3]", report.Updated)
	}
	if len(report.Skipped) != 0 {
		t.Errorf("Skipped = %v, want none", report.Skipped)
	}
	got, _ := FindByAlias(out, "nuxt3")
	if got.Repo != "nuxt/starter" || got.IsDefault {
		t.Errorf("forced seed should overwrite nuxt3, got %+v", got)
	}
	if out[0].Alias != "nuxt3" {
		t.Error("forced seed should update in place")
	}
}

func TestCatalog_Seed_Idempotent(t *testing.T) {
	first, _ := Catalog{}.Seed(Builtin(), false)
	second, report := first.Seed(Builtin(), false)
	if report.Changed() {
		t.Errorf("second seed changed catalog: %+v", report)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("second seed should leave catalog identical")
	}
}

func TestCatalog_SeedEach_Observer(t *testing.T) {
	existing := Catalog{{Alias: "nuxt3", Repo: "custom/nuxt"}}

	var got []string
	_, report := existing.SeedEach(Builtin(), false, func(alias string, o SeedOutcome) {
		got = append(got, alias+":"+o.String())
	})

	want := []string{
		"vue3-vite:added",
		"vue2:added",
		"nuxt3:skipped",
		"vue3-ts:added",
		"vue-element:added",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("observed = %v, want %v", got, want)
	}
	if len(report.Added) != 4 || len(report.Skipped) != 1 {
		t.Errorf("report = %+v", report)
	}
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	b := Builtin()
	b[0].Alias = "changed"
	if Builtin()[0].Alias != "vue3-vite" {
		t.Error("Builtin must return a copy")
	}
	if n := countDefaults(Catalog(Builtin())); n != 1 {
		t.Errorf("builtin defaults = %d, want 1", n)
	}
}
