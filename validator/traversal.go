package validator

import (
	"github.com/tschaub/stac-validator/conformance"
	"github.com/tschaub/stac-validator/internal/urlutil"
	"github.com/tschaub/stac-validator/schema"
)

// itemDetailMaxDepth controls item-level report detail: runs with a
// recursion cap below it (including unbounded runs) always retain per-item
// messages in the report, deeper capped runs retain them only when a log
// file is configured or the item failed.
const itemDetailMaxDepth = 5

// walk validates doc and descends its link graph depth-first, following
// child and item links in declaration order. depth counts child hops from
// the root. Every visited document is validated with the default
// composition against the root document's declared version.
//
// There is no cycle detection: link graphs are treated as directed and
// acyclic, and a catalog whose child links form a cycle will recurse until
// resources run out. Feeding acyclic catalogs is the operator's
// responsibility.
func (r *run) walk(ref string, doc map[string]any, depth int) {
	stacType := DetectType(ref, doc)
	msg := r.newMessage(ref, stacType, r.rootVersion, "recursive")
	msg = r.applyMode(msg, ref, doc, r.rootVersion, stacType, defaultMode{})
	r.tally(stacType, msg.ValidStac)
	r.emit(msg)
	if !msg.ValidStac {
		// An invalid document prunes its own subtree; siblings proceed.
		return
	}

	descend := r.maxDepth < 0 || depth+1 <= r.maxDepth
	for _, link := range documentLinks(doc) {
		rel, _ := link["rel"].(string)
		if rel != "child" && rel != "item" {
			continue
		}
		href, ok := link["href"].(string)
		if !ok {
			r.logger.Warn("link href is not a string, skipping", "ref", ref, "rel", rel)
			continue
		}
		target := urlutil.Resolve(ref, href)

		if rel == "item" {
			// Items are leaves and cheap to check, so they are fetched
			// and validated even when the depth cap stops descent.
			r.validateItem(target)
			continue
		}
		if !descend {
			r.logger.Debug("depth cap reached, not descending", "ref", target, "depth", depth+1)
			continue
		}
		childDoc, err := r.fetcher.FetchJSON(target)
		if err != nil {
			// A fetch failure prunes only this subtree.
			r.logger.Warn("child fetch failed", "ref", target, "error", err)
			r.emit(r.failed(Message{
				Version:          r.rootVersion,
				Path:             target,
				Schema:           []string{},
				ValidationMethod: "recursive",
			}, err))
			continue
		}
		r.walk(target, childDoc, depth+1)
	}
}

// validateItem fetches and validates one item link target.
func (r *run) validateItem(ref string) {
	doc, err := r.fetcher.FetchJSON(ref)
	if err != nil {
		r.logger.Warn("item fetch failed", "ref", ref, "error", err)
		r.emit(r.failed(Message{
			Version:          r.rootVersion,
			Path:             ref,
			Schema:           []string{},
			ValidationMethod: "recursive",
		}, err))
		return
	}

	stacType := DetectType(ref, doc)
	msg := r.newMessage(ref, stacType, r.rootVersion, "recursive")
	if r.rootVersion == "0.7.0" && stacType == schema.TypeItem {
		addr, err := r.locator.Resolve(r.rootVersion, stacType)
		if err == nil {
			msg.Schema = []string{addr}
			err = r.checkItemFlattened(doc, addr)
		}
		if err != nil {
			msg = r.failed(msg, err)
		} else {
			msg.ValidStac = true
		}
	} else {
		msg = r.applyMode(msg, ref, doc, r.rootVersion, stacType, defaultMode{})
	}

	r.tally(stacType, msg.ValidStac)
	if r.cfg.observer != nil {
		r.cfg.observer(msg)
	}
	if !msg.ValidStac || r.cfg.logPath != "" || r.maxDepth < itemDetailMaxDepth {
		r.messages = append(r.messages, msg)
	}
}

// checkItemFlattened checks an item against the 0.7.0 item schema with its
// allOf clause removed. That schema pulls geojson.json through a relative
// ref that does not resolve from the registry, so the composed clause is
// dropped and the rest of the schema is enforced.
func (r *run) checkItemFlattened(doc map[string]any, addr string) error {
	s, err := r.cache.GetOrFetch(addr+"#flattened", func(string) (*conformance.Schema, error) {
		raw, err := r.fetcher.FetchJSON(addr)
		if err != nil {
			return nil, err
		}
		stripped := make(map[string]any, len(raw))
		for key, value := range raw {
			if key == "allOf" {
				continue
			}
			stripped[key] = value
		}
		return conformance.CompileDocument(addr, stripped)
	})
	if err != nil {
		return err
	}
	return conformance.Check(doc, s)
}
