package output

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/arthur-debert/relfiles/pkg/errors"
	"github.com/arthur-debert/relfiles/pkg/types"
)

func resolveXML(res *types.ResolveResult) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("resolution")
	root.CreateAttr("input", res.Input)
	root.CreateAttr("matched", strconv.FormatBool(res.Matched))
	if res.GroupName != "" {
		root.CreateAttr("group", res.GroupName)
	}

	if res.Matched {
		files := root.CreateElement("files")
		for i, p := range res.Set.Paths {
			file := files.CreateElement("file")
			file.CreateAttr("index", strconv.Itoa(i))
			if i == res.Set.OriginIndex {
				file.CreateAttr("origin", "true")
			}
			file.SetText(p)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot marshal to xml")
	}
	return out, nil
}

func groupsXML(res *types.ListGroupsResult) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("groups")
	for _, g := range res.Groups {
		el := root.CreateElement("group")
		el.CreateAttr("priority", strconv.Itoa(g.Priority))
		if g.Name != "" {
			el.CreateAttr("name", g.Name)
		}
		for _, p := range g.Patterns {
			el.CreateElement("pattern").SetText(p)
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot marshal to xml")
	}
	return out, nil
}
