package services

import (
	"context"
	"log"

	"portalchat/internal/models"
	"portalchat/internal/repositories"
	"portalchat/internal/utils"
)

// ReconcileService is the off-hot-path cleanup for the conversation
// index. Old rows carry participant identifiers in whatever scheme
// was current when they were written (storage key, phone, address);
// the pass rewrites them to the canonical business code and merges
// rows that collapse onto the same pair afterwards. New duplicates
// cannot appear, the pair_key unique index prevents them, so this
// only ever digests legacy data.
type ReconcileService struct {
	conversationRepo *repositories.ConversationRepository
	resolver         *IdentityResolver
}

func NewReconcileService(conversationRepo *repositories.ConversationRepository, resolver *IdentityResolver) *ReconcileService {
	return &ReconcileService{
		conversationRepo: conversationRepo,
		resolver:         resolver,
	}
}

type ReconcileReport struct {
	Scanned   int `json:"scanned"`
	Rewritten int `json:"rewritten"`
	Merged    int `json:"merged"`
}

func (rs *ReconcileService) Reconcile(ctx context.Context) (*ReconcileReport, error) {
	conversations, err := rs.conversationRepo.AllConversations()
	if err != nil {
		return nil, err
	}

	report := &ReconcileReport{Scanned: len(conversations)}

	type canonicalPair struct {
		a, b string
	}
	groups := make(map[string][]models.Conversation)
	pairs := make(map[string]canonicalPair)
	order := make([]string, 0, len(conversations))

	// AllConversations is ordered by created_at, so the first row of
	// each group is the oldest and becomes the surviving record.
	for _, conversation := range conversations {
		a := rs.resolver.CanonicalID(ctx, conversation.ParticipantA)
		b := rs.resolver.CanonicalID(ctx, conversation.ParticipantB)
		key := utils.PairKey(a, b)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
			pairs[key] = canonicalPair{a: a, b: b}
		}
		groups[key] = append(groups[key], conversation)
	}

	for _, key := range order {
		group := groups[key]
		pair := pairs[key]
		winner := group[0]
		changed := winner.PairKey != key

		if len(group) > 1 {
			loserIDs := make([]uint, 0, len(group)-1)
			for _, loser := range group[1:] {
				if loser.LastMessageAt.After(winner.LastMessageAt) {
					winner.LastMessageContent = loser.LastMessageContent
					winner.LastMessageSenderID = loser.LastMessageSenderID
					winner.LastMessageAt = loser.LastMessageAt
				}
				if winner.EmployeeSnapshot == nil {
					winner.EmployeeSnapshot = loser.EmployeeSnapshot
				}
				loserIDs = append(loserIDs, loser.ID)
			}
			// Losers go first so the winner can take over the pair key.
			if err := rs.conversationRepo.DeleteConversations(loserIDs); err != nil {
				return report, err
			}
			report.Merged += len(loserIDs)
			changed = true
		}

		if changed {
			winner.ParticipantA = pair.a
			winner.ParticipantB = pair.b
			winner.PairKey = key
			if err := rs.conversationRepo.SaveConversation(&winner); err != nil {
				return report, err
			}
			report.Rewritten++
		}
	}

	if report.Rewritten > 0 || report.Merged > 0 {
		log.Printf("Conversation reconcile: scanned=%d rewritten=%d merged=%d", report.Scanned, report.Rewritten, report.Merged)
	}

	return report, nil
}
