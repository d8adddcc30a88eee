package triggers

// Trigger names, used as log fields and metric labels.
const (
	TriggerPostCreated       = "post_created"
	TriggerUserUpdated       = "user_updated"
	TriggerFollowerCreated   = "follower_created"
	TriggerReviewCreated     = "review_created"
	TriggerCommentCreated    = "comment_created"
	TriggerLiveBoujeeCreated = "live_boujee_created"
)

type Outcome string

const (
	OutcomeSent       Outcome = "sent"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeFailed     Outcome = "failed"
	OutcomeNoop       Outcome = "noop"
	OutcomePropagated Outcome = "propagated"
)

// Skip reasons.
const (
	ReasonInvalidRecord      = "invalid_record"
	ReasonNoToken            = "no_token"
	ReasonTokenLookupFailed  = "token_lookup_failed"
	ReasonFollowerNotFound   = "follower_not_found"
	ReasonUserLookupFailed   = "user_lookup_failed"
	ReasonReviewNotFound     = "review_not_found"
	ReasonReviewLookupFailed = "review_lookup_failed"
	ReasonNoTargetUser       = "no_target_user"
	ReasonSendFailed         = "send_failed"
	ReasonImageUnchanged     = "image_unchanged"
	ReasonQueryFailed        = "query_failed"
	ReasonWriteFailed        = "write_failed"
)

// Result describes how one invocation finished.
type Result struct {
	Outcome   Outcome `json:"outcome"`
	Reason    string  `json:"reason,omitempty"`
	MessageID string  `json:"messageId,omitempty"`
	Updated   int     `json:"updated,omitempty"`
}

func skipped(reason string) Result {
	return Result{Outcome: OutcomeSkipped, Reason: reason}
}
