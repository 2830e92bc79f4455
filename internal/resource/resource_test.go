package resource

import "testing"

func TestParseKind_Aliases(t *testing.T) {
	cases := []struct {
		alias string
		want  Kind
	}{
		{"character", Character},
		{"c", Character},
		{":character", Character},
		{":c", Character},
		{"transformation", Transformation},
		{"t", Transformation},
		{"planet", Planet},
		{"p", Planet},
		{"saga", Saga},
		{"s", Saga},
		{"episode", Episode},
		{"e", Episode},
		{" :E ", Episode},
	}

	for _, tc := range cases {
		got, ok := ParseKind(tc.alias)
		if !ok {
			t.Errorf("ParseKind(%q) not recognized", tc.alias)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseKind(%q) = %v, want %v", tc.alias, got, tc.want)
		}
	}
}

func TestParseKind_Unknown(t *testing.T) {
	if _, ok := ParseKind("dragon"); ok {
		t.Error("ParseKind(\"dragon\") recognized, want unknown")
	}
	if _, ok := ParseKind(""); ok {
		t.Error("ParseKind(\"\") recognized, want unknown")
	}
}

func TestKind_Endpoint(t *testing.T) {
	if got := Character.Endpoint(); got != "characters" {
		t.Errorf("Character.Endpoint() = %q, want %q", got, "characters")
	}
	if got := Planet.Endpoint(); got != "planets" {
		t.Errorf("Planet.Endpoint() = %q, want %q", got, "planets")
	}
}

func TestRef_String(t *testing.T) {
	ref := Ref{Kind: Saga, ID: 3}
	if got := ref.String(); got != "saga/3" {
		t.Errorf("Ref.String() = %q, want %q", got, "saga/3")
	}
}

func TestRecord_FieldAccess(t *testing.T) {
	rec := &Record{
		Ref:  Ref{Kind: Character, ID: 1},
		Name: "Goku",
		Fields: []Field{
			{Label: "Race", Value: "Saiyan"},
			{Label: "Description", Value: "El guerrero"},
		},
	}

	if got := rec.Field("Race"); got != "Saiyan" {
		t.Errorf("Field(Race) = %q, want %q", got, "Saiyan")
	}
	if got := rec.Field("Missing"); got != "" {
		t.Errorf("Field(Missing) = %q, want empty", got)
	}

	rec.SetField("Description", "The warrior")
	if got := rec.Field("Description"); got != "The warrior" {
		t.Errorf("Field(Description) = %q after SetField, want %q", got, "The warrior")
	}

	// SetField on an absent label must not add one
	rec.SetField("Nope", "x")
	if len(rec.Fields) != 2 {
		t.Errorf("len(Fields) = %d after SetField on absent label, want 2", len(rec.Fields))
	}
}

func TestRecord_HasRelation(t *testing.T) {
	rec := &Record{
		Ref:       Ref{Kind: Character, ID: 1},
		Relations: []Ref{{Kind: Transformation, ID: 4}, {Kind: Planet, ID: 2}},
	}

	if !rec.HasRelation(Ref{Kind: Transformation, ID: 4}) {
		t.Error("HasRelation(transformation/4) = false, want true")
	}
	if rec.HasRelation(Ref{Kind: Transformation, ID: 5}) {
		t.Error("HasRelation(transformation/5) = true, want false")
	}
}

func TestListPage_Pagination(t *testing.T) {
	page := &ListPage{
		Kind:       Character,
		Page:       0,
		Items:      []Summary{{Ref: Ref{Kind: Character, ID: 1}, Name: "Goku"}},
		TotalItems: 58,
		TotalPages: 3,
	}

	if !page.HasNext() {
		t.Error("HasNext() = false on page 0 of 3, want true")
	}
	if !page.Contains(Ref{Kind: Character, ID: 1}) {
		t.Error("Contains(character/1) = false, want true")
	}
	if page.Contains(Ref{Kind: Character, ID: 2}) {
		t.Error("Contains(character/2) = true, want false")
	}

	last := &ListPage{Kind: Character, Page: 2, TotalPages: 3}
	if last.HasNext() {
		t.Error("HasNext() = true on last page, want false")
	}
}
