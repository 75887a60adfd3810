package schema

import (
	"errors"
	"testing"

	"github.com/voyagerhq/voyager/pkg/types"
)

func TestRegistryTableLookup(t *testing.T) {
	reg := Default()

	for _, name := range []string{
		types.TableCountries,
		types.TableVibeCategories,
		types.TableVibes,
		types.TableVibesCountry,
		types.TableProfiles,
		types.TableCountriesVisited,
		types.TableVibesUsers,
		types.TableCountryOverview,
		types.TableCountryBestTimes,
		types.TableCountryAiSuggest,
		types.TableCountryPodcasts,
	} {
		tbl, err := reg.Table(name)
		if err != nil {
			t.Errorf("Table(%q) failed: %v", name, err)
		}
		if tbl == nil || tbl.Name != name {
			t.Errorf("Table(%q) returned %+v", name, tbl)
		}
	}

	_, err := reg.Table("unknown")
	if !errors.Is(err, types.ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound for unknown table, got %v", err)
	}
}

func TestRegistryDependents(t *testing.T) {
	reg := Default()

	// countries is referenced by the junction, the visit table, and the
	// four child tables.
	deps := reg.Dependents(types.TableCountries)
	onDelete := map[string]OnDelete{}
	for _, d := range deps {
		onDelete[d.Table.Name] = d.ForeignKey.OnDelete
	}

	wantCascade := []string{
		types.TableVibesCountry,
		types.TableCountryOverview,
		types.TableCountryBestTimes,
		types.TableCountryAiSuggest,
		types.TableCountryPodcasts,
	}
	for _, name := range wantCascade {
		got, ok := onDelete[name]
		if !ok {
			t.Errorf("%s missing from countries dependents", name)
			continue
		}
		if got != Cascade {
			t.Errorf("%s on-delete: got %s, want CASCADE", name, got)
		}
	}
	if got := onDelete[types.TableCountriesVisited]; got != Restrict {
		t.Errorf("countries_visited on-delete: got %s, want RESTRICT", got)
	}

	// vibes protect curated data: both referencing tables restrict.
	for _, d := range reg.Dependents(types.TableVibes) {
		if d.ForeignKey.OnDelete != Restrict {
			t.Errorf("%s -> vibes on-delete: got %s, want RESTRICT", d.Table.Name, d.ForeignKey.OnDelete)
		}
	}

	// profiles cascade into both user-owned link tables.
	profileDeps := reg.Dependents(types.TableProfiles)
	if len(profileDeps) != 2 {
		t.Fatalf("profiles dependents: got %d, want 2", len(profileDeps))
	}
	for _, d := range profileDeps {
		if d.ForeignKey.OnDelete != Cascade {
			t.Errorf("%s -> profiles on-delete: got %s, want CASCADE", d.Table.Name, d.ForeignKey.OnDelete)
		}
	}
}

func TestTableHasGeneratedID(t *testing.T) {
	reg := Default()

	countries, _ := reg.Table(types.TableCountries)
	if !countries.HasGeneratedID() {
		t.Error("countries should have a generated id")
	}

	visits, _ := reg.Table(types.TableCountriesVisited)
	if visits.HasGeneratedID() {
		t.Error("countries_visited uses a composite key, not a generated id")
	}

	// profiles carry an externally assigned subject id, but the column is
	// still the single "id" primary key.
	profiles, _ := reg.Table(types.TableProfiles)
	if !profiles.HasGeneratedID() {
		t.Error("profiles primary key should be the single id column")
	}
}

func TestCheckUppercase(t *testing.T) {
	check := CheckUppercase("iso2")

	if err := check("JP"); err != nil {
		t.Errorf("uppercase value should pass: %v", err)
	}
	err := check("jp")
	if !errors.Is(err, types.ErrCheckViolation) {
		t.Errorf("lowercase value: expected ErrCheckViolation, got %v", err)
	}
	// Non-string values are ignored here; type errors surface elsewhere.
	if err := check(42); err != nil {
		t.Errorf("non-string value should pass: %v", err)
	}
}

func TestCheckLength(t *testing.T) {
	check := CheckLength("iso2", 2)

	if err := check("JP"); err != nil {
		t.Errorf("two characters should pass: %v", err)
	}
	if err := check("JPN"); !errors.Is(err, types.ErrCheckViolation) {
		t.Errorf("three characters: expected ErrCheckViolation, got %v", err)
	}
}

func TestCheckEnum(t *testing.T) {
	check := CheckEnum("continent", types.Continents)

	if err := check("Asia"); err != nil {
		t.Errorf("known continent should pass: %v", err)
	}
	if err := check("Atlantis"); !errors.Is(err, types.ErrCheckViolation) {
		t.Errorf("unknown continent: expected ErrCheckViolation, got %v", err)
	}
}

func TestCheckNonNegative(t *testing.T) {
	check := CheckNonNegative("duration_sec")

	if err := check(int64(0)); err != nil {
		t.Errorf("zero should pass: %v", err)
	}
	if err := check(float64(90)); err != nil {
		t.Errorf("positive float should pass: %v", err)
	}
	if err := check(int64(-1)); !errors.Is(err, types.ErrCheckViolation) {
		t.Errorf("negative value: expected ErrCheckViolation, got %v", err)
	}
}

func TestCheckAllShortCircuits(t *testing.T) {
	check := CheckAll(CheckLength("iso2", 2), CheckUppercase("iso2"))

	if err := check("JP"); err != nil {
		t.Errorf("valid value should pass both checks: %v", err)
	}
	if err := check("j"); !errors.Is(err, types.ErrCheckViolation) {
		t.Errorf("expected ErrCheckViolation from length check, got %v", err)
	}
	if err := check("jp"); !errors.Is(err, types.ErrCheckViolation) {
		t.Errorf("expected ErrCheckViolation from uppercase check, got %v", err)
	}
}
