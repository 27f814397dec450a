package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/curricula/course"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode writes d to w in format f.
func Encode(w io.Writer, f Format, d *Definition) error {
	var err error
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(d); err == nil {
			err = enc.Close()
		}
	case TOML:
		err = toml.NewEncoder(w).Encode(d)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(d)
	case HCL:
		_, err = w.Write(encodeHCL(d))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("loader: encode %s: %w", f, err)
	}

	return nil
}

// describer is the descriptive part shared by courses and collections.
type describer interface {
	Institution() string
	College() string
	Department() string
	CanonicalName() string
}

func courseDef(it course.Item) CourseDef {
	cd := CourseDef{
		ID:      it.ID(),
		Name:    it.Name(),
		Credits: it.Credits(),
	}
	if d, ok := it.(describer); ok {
		cd.Institution = d.Institution()
		cd.College = d.College()
		cd.Department = d.Department()
		cd.CanonicalName = d.CanonicalName()
	}
	switch c := it.(type) {
	case *course.Course:
		cd.Prefix, cd.Num = c.Prefix(), c.Num()
	case *course.Collection:
		for _, m := range c.Courses() {
			cd.Members = append(cd.Members, courseDef(m))
		}
	}

	reqs := it.Requisites()
	ids := make([]string, 0, len(reqs))
	for id := range reqs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		cd.Requisites = append(cd.Requisites, RequisiteDef{ID: id, Kind: reqs[id].String()})
	}

	return cd
}
