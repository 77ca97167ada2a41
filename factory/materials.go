package factory

import "sort"

// classify derives the raw/intermediate/byproduct/all item sets from the
// recipe set, the raw-supply map and the target: an item is raw iff it
// appears in RawSupply; otherwise intermediate if both produced and
// consumed by some recipe; a produced-but-never-consumed non-target item
// is a byproduct.
//
// Item order follows the request's only order-preserving axis: the
// recipes slice. Within a single recipe, Outputs/Inputs are Go maps —
// decoding a JSON object into a map discards key order, and map iteration
// is itself randomized per process — so there is no input order left to
// recover there; classify takes those item names sorted instead, which is
// at least deterministic across runs. Items seen only in raw_supply (never
// in any recipe) are likewise appended in sorted order: same request, same
// output, every time, even though map-sourced items can't literally echo
// request byte order.
func classify(in Input) materials {
	produced := map[string]bool{}
	consumed := map[string]bool{}
	var all []string
	for _, r := range in.Recipes {
		for _, item := range sortedKeys(r.Outputs) {
			produced[item] = true
			all = appendIfNew(all, item)
		}
		for _, item := range sortedKeys(r.Inputs) {
			consumed[item] = true
			all = appendIfNew(all, item)
		}
	}
	for _, item := range sortedKeys(in.RawSupply) {
		all = appendIfNew(all, item)
	}
	all = appendIfNew(all, in.Target.Item)

	isRaw := func(item string) bool {
		_, ok := in.RawSupply[item]
		return ok
	}

	var m materials
	for _, item := range all {
		switch {
		case isRaw(item):
			m.raw = append(m.raw, item)
		case item == in.Target.Item:
			// target handled separately, not intermediate/byproduct
		case produced[item] && consumed[item]:
			m.intermediate = append(m.intermediate, item)
		case produced[item] && !consumed[item]:
			m.byproduct = append(m.byproduct, item)
		}
	}
	m.all = all
	return m
}

// machineTypes returns the union of declared machine-type caps and machine
// types referenced by recipes. Input.Machines is a map, so — per the same
// reasoning as classify — its keys contribute in sorted order; recipe
// machine references then contribute in recipe order, since Recipe.Machine
// is a single ungrouped field and recipe position is preserved. A machine
// type referenced by a recipe but absent from Input.Machines is treated as
// having a cap of 0 (the plan can never use it).
func machineTypes(in Input) []string {
	var out []string
	for _, t := range sortedKeys(in.Machines) {
		out = appendIfNew(out, t)
	}
	for _, r := range in.Recipes {
		out = appendIfNew(out, r.Machine)
	}
	return out
}

func appendIfNew(order []string, v string) []string {
	for _, existing := range order {
		if existing == v {
			return order
		}
	}
	return append(order, v)
}

func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// netCoefficient returns the net-production coefficient of recipe r for
// item, i.e. productivity_multiplier(r)*out(r,item) - in(r,item).
func netCoefficient(r Recipe, item string) float64 {
	return r.productivityMultiplier()*r.Outputs[item] - r.Inputs[item]
}
