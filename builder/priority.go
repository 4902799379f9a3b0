package builder

import (
	"sort"

	iotago "github.com/iotaledger/iota.go/v4"
)

// outputKindPriority orders candidate inputs by output kind when the builder must pick additional inputs to
// close a deficit: Basic outputs are preferred over NFTs, which are preferred over Accounts, which are preferred
// over Foundries, since spending the simplest output first disturbs the fewest chain requirements.
func outputKindPriority(output iotago.Output) int {
	switch output.(type) {
	case *iotago.BasicOutput:
		return 0
	case *iotago.NFTOutput:
		return 1
	case *iotago.AccountOutput:
		return 2
	case *iotago.FoundryOutput:
		return 3
	default:
		return 4
	}
}

func nativeTokensOf(output iotago.Output) iotago.NativeTokens {
	switch o := output.(type) {
	case *iotago.BasicOutput:
		return o.NativeTokenList()
	case *iotago.NFTOutput:
		return o.NativeTokenList()
	default:
		return nil
	}
}

// valueFunc extracts the quantity a priority ordering sorts candidates by (amount or mana).
type valueFunc[V ~uint64] func(input *InputSigningData) V

// orderCandidatesForDeficit sorts candidates so that the ones most useful for closing a deficit of missing come
// first: grouped by output kind, then by whether they carry native tokens, then within a group candidates whose
// own value already covers the remaining deficit are offered smallest-first, to minimize overshoot, and
// candidates below the deficit are offered largest-first, to close it in as few selections as possible.
func orderCandidatesForDeficit[V ~uint64](candidates []*InputSigningData, missing V, value valueFunc[V]) []*InputSigningData {
	ordered := make([]*InputSigningData, len(candidates))
	copy(ordered, candidates)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]

		if ap, bp := outputKindPriority(a.Output), outputKindPriority(b.Output); ap != bp {
			return ap < bp
		}

		aHasNative, bHasNative := len(nativeTokensOf(a.Output)) > 0, len(nativeTokensOf(b.Output)) > 0
		if aHasNative != bHasNative {
			return !aHasNative
		}

		av, bv := value(a), value(b)
		aCovers, bCovers := av >= missing, bv >= missing
		if aCovers != bCovers {
			return aCovers
		}
		if aCovers {
			return av < bv
		}

		return av > bv
	})

	return ordered
}
