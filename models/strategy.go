package models

// PairingStrategy определяет систему жеребьёвки очередного тура.
type PairingStrategy string

const (
	StrategySwiss      PairingStrategy = "swiss"
	StrategyRoundRobin PairingStrategy = "round-robin"
	StrategyKnockout   PairingStrategy = "knockout"
)

func (s PairingStrategy) Valid() bool {
	switch s {
	case StrategySwiss, StrategyRoundRobin, StrategyKnockout:
		return true
	}
	return false
}
