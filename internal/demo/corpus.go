package demo

import (
	"strings"

	"tagbar/internal/discovery"
	"tagbar/internal/domain"
)

// builtinCorpus is used when no corpus file is given
const builtinCorpus = `
Siamese	cat breed, vocal and slender
Maine Coon	cat breed, large with a shaggy coat
Persian	cat breed, long hair and flat face
Sphynx	cat breed, hairless and warm to the touch
Bengal	cat breed with a spotted coat
Border Collie	dog breed, herding and very quick to learn
Labrador Retriever	dog breed, friendly family dog
Dachshund	dog breed, long body and short legs
Greyhound	dog breed, racing sighthound
Beagle	dog breed, scent hound
Cockatiel	bird, small parrot with a crest
African Grey	bird, parrot known for speech
Barn Owl	bird, nocturnal with a heart shaped face
Goldfish	fish, freshwater aquarium classic
Betta	fish, territorial with long fins
Axolotl	amphibian that keeps its gills
Tree Frog	amphibian, small and green
Corn Snake	reptile, docile constrictor
Bearded Dragon	reptile, lizard from Australia
Leopard Gecko	reptile, lizard with spotted skin
Rabbit	small mammal, long ears
Guinea Pig	small mammal, vocal rodent
Ferret	small mammal, playful mustelid
Hedgehog	small mammal covered in spines
Hamster	small mammal, rodent with cheek pouches
`

// DefaultCorpus returns the built-in demo documents.
func DefaultCorpus() []domain.Document {
	docs, err := discovery.ParseLines(strings.NewReader(builtinCorpus))
	if err != nil {
		panic(err)
	}
	return docs
}
