package model

import (
	"math"
	"math/rand"
	"sort"
)

// Random forest training constants. Fixed so that training is
// deterministic for a given seed.
const (
	forestTrees    = 25
	forestMaxDepth = 12
)

// TreeNode is one node of a decision tree. Leaves carry a label;
// interior nodes split on presence of a single vocabulary term
// (TF-IDF value above zero).
type TreeNode struct {
	Feature int       `json:"feature"`
	Leaf    string    `json:"leaf,omitempty"`
	Absent  *TreeNode `json:"absent,omitempty"`
	Present *TreeNode `json:"present,omitempty"`
}

// ForestModel is a bootstrap-aggregated ensemble of decision trees
// voting by majority.
type ForestModel struct {
	Classes []string    `json:"classes"`
	Trees   []*TreeNode `json:"trees"`
}

func trainForest(vectors []Vector, labels []string, features int, seed int64) *ForestModel {
	rng := rand.New(rand.NewSource(seed))
	m := &ForestModel{
		Classes: sortedClasses(labels),
		Trees:   make([]*TreeNode, 0, forestTrees),
	}

	subset := int(math.Ceil(math.Sqrt(float64(features))))
	for t := 0; t < forestTrees; t++ {
		sample := make([]int, len(vectors))
		for i := range sample {
			sample[i] = rng.Intn(len(vectors))
		}
		m.Trees = append(m.Trees, growTree(vectors, labels, sample, features, subset, 0, rng))
	}
	return m
}

func growTree(
	vectors []Vector,
	labels []string,
	indices []int,
	features int,
	subset int,
	depth int,
	rng *rand.Rand,
) *TreeNode {
	if depth >= forestMaxDepth || pure(labels, indices) {
		return &TreeNode{Leaf: majorityLabel(labels, indices)}
	}

	feature, gain := bestPresenceSplit(vectors, labels, indices, features, subset, rng)
	if gain <= 0 {
		return &TreeNode{Leaf: majorityLabel(labels, indices)}
	}

	absent := make([]int, 0, len(indices))
	present := make([]int, 0, len(indices))
	for _, i := range indices {
		if vectors[i].At(feature) > 0 {
			present = append(present, i)
		} else {
			absent = append(absent, i)
		}
	}
	if len(absent) == 0 || len(present) == 0 {
		return &TreeNode{Leaf: majorityLabel(labels, indices)}
	}

	return &TreeNode{
		Feature: feature,
		Absent:  growTree(vectors, labels, absent, features, subset, depth+1, rng),
		Present: growTree(vectors, labels, present, features, subset, depth+1, rng),
	}
}

// bestPresenceSplit evaluates a random feature subset and returns the
// feature whose present/absent split yields the largest Gini impurity
// decrease.
func bestPresenceSplit(
	vectors []Vector,
	labels []string,
	indices []int,
	features int,
	subset int,
	rng *rand.Rand,
) (int, float64) {
	parent := gini(labels, indices)
	bestFeature := -1
	bestGain := 0.0

	for k := 0; k < subset; k++ {
		feature := rng.Intn(features)
		absent := make([]int, 0, len(indices))
		present := make([]int, 0, len(indices))
		for _, i := range indices {
			if vectors[i].At(feature) > 0 {
				present = append(present, i)
			} else {
				absent = append(absent, i)
			}
		}
		if len(absent) == 0 || len(present) == 0 {
			continue
		}

		total := float64(len(indices))
		weighted := float64(len(absent))/total*gini(labels, absent) +
			float64(len(present))/total*gini(labels, present)
		gain := parent - weighted
		if gain > bestGain {
			bestGain = gain
			bestFeature = feature
		}
	}
	return bestFeature, bestGain
}

// gini accumulates class terms in sorted label order so the impurity
// rounds identically from run to run.
func gini(labels []string, indices []int) float64 {
	counts := make(map[string]int)
	for _, i := range indices {
		counts[labels[i]]++
	}
	ordered := make([]string, 0, len(counts))
	for label := range counts {
		ordered = append(ordered, label)
	}
	sort.Strings(ordered)

	total := float64(len(indices))
	impurity := 1.0
	for _, label := range ordered {
		p := float64(counts[label]) / total
		impurity -= p * p
	}
	return impurity
}

func pure(labels []string, indices []int) bool {
	for _, i := range indices[1:] {
		if labels[i] != labels[indices[0]] {
			return false
		}
	}
	return true
}

// majorityLabel breaks count ties by ascending label order.
func majorityLabel(labels []string, indices []int) string {
	counts := make(map[string]int)
	for _, i := range indices {
		counts[labels[i]]++
	}
	ordered := make([]string, 0, len(counts))
	for label := range counts {
		ordered = append(ordered, label)
	}
	sort.Strings(ordered)

	best := ordered[0]
	for _, label := range ordered[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}
	return best
}

func (m *ForestModel) predict(vec Vector) string {
	votes := make(map[string]int)
	for _, tree := range m.Trees {
		votes[tree.classify(vec)]++
	}

	best := ""
	for _, class := range m.Classes {
		if best == "" || votes[class] > votes[best] {
			best = class
		}
	}
	return best
}

func (n *TreeNode) classify(vec Vector) string {
	node := n
	for node.Leaf == "" {
		if vec.At(node.Feature) > 0 {
			node = node.Present
		} else {
			node = node.Absent
		}
	}
	return node.Leaf
}
