package steps

import "github.com/KirkDiggler/daggerheart-wizard/internal/entities/daggerheart"

// AncestryConfig returns the config of the ancestry step
func AncestryConfig(ancestries []daggerheart.Entity) *Config {
	return &Config{
		Kind:      daggerheart.KindAncestry,
		Title:     "Choose Your Ancestry",
		Subtitle:  "Your ancestry determines your character's heritage and physical traits",
		Entities:  ancestries,
		NextLabel: "Next: Community →",
	}
}

// CommunityConfig returns the config of the community step
func CommunityConfig(communities []daggerheart.Entity) *Config {
	return &Config{
		Kind:      daggerheart.KindCommunity,
		Title:     "Choose Your Community",
		Subtitle:  "Your community represents where you grew up and trained",
		Entities:  communities,
		NextLabel: "Next: Class →",
		BackLabel: "← Back: Ancestry",
	}
}
