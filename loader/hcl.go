package loader

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// hclDefinition is the HCL layout of a Definition; course ids are block labels.
type hclDefinition struct {
	ID          string       `hcl:"id,optional"`
	Name        string       `hcl:"name"`
	Institution string       `hcl:"institution,optional"`
	DegreeType  string       `hcl:"degree_type,optional"`
	CIP         string       `hcl:"cip,optional"`
	Courses     []*hclCourse `hcl:"course,block"`
}

type hclCourse struct {
	ID            string          `hcl:"id,label"`
	Name          string          `hcl:"name"`
	Credits       float64         `hcl:"credits"`
	Prefix        string          `hcl:"prefix,optional"`
	Num           string          `hcl:"num,optional"`
	Institution   string          `hcl:"institution,optional"`
	College       string          `hcl:"college,optional"`
	Department    string          `hcl:"department,optional"`
	CanonicalName string          `hcl:"canonical_name,optional"`
	Requisites    []*hclRequisite `hcl:"requisite,block"`
	Members       []*hclMember    `hcl:"member,block"`
}

type hclRequisite struct {
	ID   string `hcl:"id,label"`
	Kind string `hcl:"kind,optional"`
}

type hclMember struct {
	ID      string  `hcl:"id,label"`
	Name    string  `hcl:"name"`
	Credits float64 `hcl:"credits"`
	Prefix  string  `hcl:"prefix,optional"`
	Num     string  `hcl:"num,optional"`
}

// parseHCL decodes one HCL definition; name labels diagnostics.
func parseHCL(data []byte, name string) (*Definition, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("loader: parse hcl %s: %w", name, diags)
	}
	var raw hclDefinition
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("loader: decode hcl %s: %w", name, diags)
	}

	def := &Definition{
		ID:          raw.ID,
		Name:        raw.Name,
		Institution: raw.Institution,
		DegreeType:  raw.DegreeType,
		CIP:         raw.CIP,
	}
	for _, hc := range raw.Courses {
		cd := CourseDef{
			ID:            hc.ID,
			Name:          hc.Name,
			Credits:       hc.Credits,
			Prefix:        hc.Prefix,
			Num:           hc.Num,
			Institution:   hc.Institution,
			College:       hc.College,
			Department:    hc.Department,
			CanonicalName: hc.CanonicalName,
		}
		for _, hr := range hc.Requisites {
			cd.Requisites = append(cd.Requisites, RequisiteDef{ID: hr.ID, Kind: hr.Kind})
		}
		for _, hm := range hc.Members {
			cd.Members = append(cd.Members, CourseDef{
				ID:      hm.ID,
				Name:    hm.Name,
				Credits: hm.Credits,
				Prefix:  hm.Prefix,
				Num:     hm.Num,
			})
		}
		def.Courses = append(def.Courses, cd)
	}

	return def, nil
}

// encodeHCL renders d in the layout parseHCL reads. Empty optional
// attributes are omitted.
func encodeHCL(d *Definition) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	setString(body, "id", d.ID)
	body.SetAttributeValue("name", cty.StringVal(d.Name))
	setString(body, "institution", d.Institution)
	setString(body, "degree_type", d.DegreeType)
	setString(body, "cip", d.CIP)

	for _, cd := range d.Courses {
		body.AppendNewline()
		cb := body.AppendNewBlock("course", []string{cd.ID}).Body()
		cb.SetAttributeValue("name", cty.StringVal(cd.Name))
		cb.SetAttributeValue("credits", cty.NumberFloatVal(cd.Credits))
		setString(cb, "prefix", cd.Prefix)
		setString(cb, "num", cd.Num)
		setString(cb, "institution", cd.Institution)
		setString(cb, "college", cd.College)
		setString(cb, "department", cd.Department)
		setString(cb, "canonical_name", cd.CanonicalName)
		for _, rd := range cd.Requisites {
			rb := cb.AppendNewBlock("requisite", []string{rd.ID}).Body()
			setString(rb, "kind", rd.Kind)
		}
		for _, m := range cd.Members {
			mb := cb.AppendNewBlock("member", []string{m.ID}).Body()
			mb.SetAttributeValue("name", cty.StringVal(m.Name))
			mb.SetAttributeValue("credits", cty.NumberFloatVal(m.Credits))
			setString(mb, "prefix", m.Prefix)
			setString(mb, "num", m.Num)
		}
	}

	return f.Bytes()
}

func setString(b *hclwrite.Body, name, v string) {
	if v != "" {
		b.SetAttributeValue(name, cty.StringVal(v))
	}
}
