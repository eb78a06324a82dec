package errors

// ErrorCode is a machine-readable error code. Server codes use the exact
// string Slack returns in the envelope's "error" field.
type ErrorCode string

// Client-side kinds.
const (
	// ErrCodeClientNetwork covers URL construction failures, transport
	// failures and unexpected HTTP statuses.
	ErrCodeClientNetwork ErrorCode = "client_network_error"
	// ErrCodeClientJSON indicates the response body was not a JSON object.
	ErrCodeClientJSON ErrorCode = "client_json_error"
	// ErrCodeTooManyRequests indicates HTTP 429.
	ErrCodeTooManyRequests ErrorCode = "too_many_requests"
	// ErrCodeUnknown is the fallback for unrecognised or missing codes.
	ErrCodeUnknown ErrorCode = "unknown_error"
)

// Configuration errors are returned by constructors, never by a call.
const (
	ErrCodeInvalidConfig ErrorCode = "invalid_config"
)

// Server-reported codes.
const (
	ErrCodeAccountInactive                  ErrorCode = "account_inactive"
	ErrCodeAlreadyArchived                  ErrorCode = "already_archived"
	ErrCodeAlreadyInChannel                 ErrorCode = "already_in_channel"
	ErrCodeAlreadyPinned                    ErrorCode = "already_pinned"
	ErrCodeAlreadyReacted                   ErrorCode = "already_reacted"
	ErrCodeAlreadyStarred                   ErrorCode = "already_starred"
	ErrCodeBadClientSecret                  ErrorCode = "bad_client_secret"
	ErrCodeBadRedirectURI                   ErrorCode = "bad_redirect_uri"
	ErrCodeBadTimestamp                     ErrorCode = "bad_timestamp"
	ErrCodeCantArchiveGeneral               ErrorCode = "cant_archive_general"
	ErrCodeCantDelete                       ErrorCode = "cant_delete"
	ErrCodeCantDeleteFile                   ErrorCode = "cant_delete_file"
	ErrCodeCantDeleteMessage                ErrorCode = "cant_delete_message"
	ErrCodeCantInvite                       ErrorCode = "cant_invite"
	ErrCodeCantInviteSelf                   ErrorCode = "cant_invite_self"
	ErrCodeCantKickFromGeneral              ErrorCode = "cant_kick_from_general"
	ErrCodeCantKickFromLastChannel          ErrorCode = "cant_kick_from_last_channel"
	ErrCodeCantKickSelf                     ErrorCode = "cant_kick_self"
	ErrCodeCantLeaveGeneral                 ErrorCode = "cant_leave_general"
	ErrCodeCantLeaveLastChannel             ErrorCode = "cant_leave_last_channel"
	ErrCodeCantUpdateMessage                ErrorCode = "cant_update_message"
	ErrCodeChannelNotFound                  ErrorCode = "channel_not_found"
	ErrCodeComplianceExportsPreventDeletion ErrorCode = "compliance_exports_prevent_deletion"
	ErrCodeEditWindowClosed                 ErrorCode = "edit_window_closed"
	ErrCodeFileCommentNotFound              ErrorCode = "file_comment_not_found"
	ErrCodeFileDeleted                      ErrorCode = "file_deleted"
	ErrCodeFileNotFound                     ErrorCode = "file_not_found"
	ErrCodeFileNotShared                    ErrorCode = "file_not_shared"
	ErrCodeGroupContainsOthers              ErrorCode = "group_contains_others"
	ErrCodeInvalidArgName                   ErrorCode = "invalid_arg_name"
	ErrCodeInvalidArrayArg                  ErrorCode = "invalid_array_arg"
	ErrCodeInvalidAuth                      ErrorCode = "invalid_auth"
	ErrCodeInvalidChannel                   ErrorCode = "invalid_channel"
	ErrCodeInvalidCharset                   ErrorCode = "invalid_charset"
	ErrCodeInvalidClientID                  ErrorCode = "invalid_client_id"
	ErrCodeInvalidCode                      ErrorCode = "invalid_code"
	ErrCodeInvalidCursor                    ErrorCode = "invalid_cursor"
	ErrCodeInvalidFormData                  ErrorCode = "invalid_form_data"
	ErrCodeInvalidLimit                     ErrorCode = "invalid_limit"
	ErrCodeInvalidName                      ErrorCode = "invalid_name"
	ErrCodeInvalidPostType                  ErrorCode = "invalid_post_type"
	ErrCodeInvalidPresence                  ErrorCode = "invalid_presence"
	ErrCodeInvalidTimestamp                 ErrorCode = "invalid_timestamp"
	ErrCodeInvalidTSLatest                  ErrorCode = "invalid_ts_latest"
	ErrCodeInvalidTSOldest                  ErrorCode = "invalid_ts_oldest"
	ErrCodeInvalidTypes                     ErrorCode = "invalid_types"
	ErrCodeIsArchived                       ErrorCode = "is_archived"
	ErrCodeLastMember                       ErrorCode = "last_member"
	ErrCodeLastRAChannel                    ErrorCode = "last_ra_channel"
	ErrCodeMessageNotFound                  ErrorCode = "message_not_found"
	ErrCodeMessageTooLong                   ErrorCode = "msg_too_long"
	ErrCodeMigrationInProgress              ErrorCode = "migration_in_progress"
	ErrCodeMissingDuration                  ErrorCode = "missing_duration"
	ErrCodeMissingPostType                  ErrorCode = "missing_post_type"
	ErrCodeMissingScope                     ErrorCode = "missing_scope"
	ErrCodeNameTaken                        ErrorCode = "name_taken"
	ErrCodeNoChannel                        ErrorCode = "no_channel"
	ErrCodeNoComment                        ErrorCode = "no_comment"
	ErrCodeNoItemSpecified                  ErrorCode = "no_item_specified"
	ErrCodeNoReaction                       ErrorCode = "no_reaction"
	ErrCodeNoText                           ErrorCode = "no_text"
	ErrCodeNotArchived                      ErrorCode = "not_archived"
	ErrCodeNotAuthed                        ErrorCode = "not_authed"
	ErrCodeNotAuthorized                    ErrorCode = "not_authorized"
	ErrCodeNotEnoughUsers                   ErrorCode = "not_enough_users"
	ErrCodeNotInChannel                     ErrorCode = "not_in_channel"
	ErrCodeNotInGroup                       ErrorCode = "not_in_group"
	ErrCodeNotPinned                        ErrorCode = "not_pinned"
	ErrCodeNotStarred                       ErrorCode = "not_starred"
	ErrCodeOverPaginationLimit              ErrorCode = "over_pagination_limit"
	ErrCodePaidOnly                         ErrorCode = "paid_only"
	ErrCodePermissionDenied                 ErrorCode = "permission_denied"
	ErrCodePostingToGeneralChannelDenied    ErrorCode = "posting_to_general_channel_denied"
	ErrCodeRateLimited                      ErrorCode = "rate_limited"
	ErrCodeRequestTimeout                   ErrorCode = "request_timeout"
	ErrCodeRestrictedAction                 ErrorCode = "restricted_action"
	ErrCodeSnoozeEndFailed                  ErrorCode = "snooze_end_failed"
	ErrCodeSnoozeFailed                     ErrorCode = "snooze_failed"
	ErrCodeSnoozeNotActive                  ErrorCode = "snooze_not_active"
	ErrCodeTooLong                          ErrorCode = "too_long"
	ErrCodeTooManyEmoji                     ErrorCode = "too_many_emoji"
	ErrCodeTooManyReactions                 ErrorCode = "too_many_reactions"
	ErrCodeTooManyUsers                     ErrorCode = "too_many_users"
	ErrCodeUnknownType                      ErrorCode = "unknown_type"
	ErrCodeUserDisabled                     ErrorCode = "user_disabled"
	ErrCodeUserDoesNotOwnChannel            ErrorCode = "user_does_not_own_channel"
	ErrCodeUserIsBot                        ErrorCode = "user_is_bot"
	ErrCodeUserIsRestricted                 ErrorCode = "user_is_restricted"
	ErrCodeUserIsUltraRestricted            ErrorCode = "user_is_ultra_restricted"
	ErrCodeUserListNotSupplied              ErrorCode = "user_list_not_supplied"
	ErrCodeUserNotFound                     ErrorCode = "user_not_found"
	ErrCodeUserNotVisible                   ErrorCode = "user_not_visible"
)

// knownCodes holds the server table only. Client kinds are never looked up
// from a wire string.
var knownCodes = map[ErrorCode]struct{}{}

func init() {
	for _, c := range []ErrorCode{
		ErrCodeAccountInactive, ErrCodeAlreadyArchived, ErrCodeAlreadyInChannel, ErrCodeAlreadyPinned,
		ErrCodeAlreadyReacted, ErrCodeAlreadyStarred, ErrCodeBadClientSecret, ErrCodeBadRedirectURI,
		ErrCodeBadTimestamp, ErrCodeCantArchiveGeneral, ErrCodeCantDelete, ErrCodeCantDeleteFile,
		ErrCodeCantDeleteMessage, ErrCodeCantInvite, ErrCodeCantInviteSelf, ErrCodeCantKickFromGeneral,
		ErrCodeCantKickFromLastChannel, ErrCodeCantKickSelf, ErrCodeCantLeaveGeneral, ErrCodeCantLeaveLastChannel,
		ErrCodeCantUpdateMessage, ErrCodeChannelNotFound, ErrCodeComplianceExportsPreventDeletion,
		ErrCodeEditWindowClosed, ErrCodeFileCommentNotFound, ErrCodeFileDeleted, ErrCodeFileNotFound,
		ErrCodeFileNotShared, ErrCodeGroupContainsOthers, ErrCodeInvalidArgName, ErrCodeInvalidArrayArg,
		ErrCodeInvalidAuth, ErrCodeInvalidChannel, ErrCodeInvalidCharset, ErrCodeInvalidClientID,
		ErrCodeInvalidCode, ErrCodeInvalidCursor, ErrCodeInvalidFormData, ErrCodeInvalidLimit,
		ErrCodeInvalidName, ErrCodeInvalidPostType, ErrCodeInvalidPresence, ErrCodeInvalidTimestamp,
		ErrCodeInvalidTSLatest, ErrCodeInvalidTSOldest, ErrCodeInvalidTypes, ErrCodeIsArchived,
		ErrCodeLastMember, ErrCodeLastRAChannel, ErrCodeMessageNotFound, ErrCodeMessageTooLong,
		ErrCodeMigrationInProgress, ErrCodeMissingDuration, ErrCodeMissingPostType, ErrCodeMissingScope,
		ErrCodeNameTaken, ErrCodeNoChannel, ErrCodeNoComment, ErrCodeNoItemSpecified, ErrCodeNoReaction,
		ErrCodeNoText, ErrCodeNotArchived, ErrCodeNotAuthed, ErrCodeNotAuthorized, ErrCodeNotEnoughUsers,
		ErrCodeNotInChannel, ErrCodeNotInGroup, ErrCodeNotPinned, ErrCodeNotStarred,
		ErrCodeOverPaginationLimit, ErrCodePaidOnly, ErrCodePermissionDenied,
		ErrCodePostingToGeneralChannelDenied, ErrCodeRateLimited, ErrCodeRequestTimeout,
		ErrCodeRestrictedAction, ErrCodeSnoozeEndFailed, ErrCodeSnoozeFailed, ErrCodeSnoozeNotActive,
		ErrCodeTooLong, ErrCodeTooManyEmoji, ErrCodeTooManyReactions, ErrCodeTooManyUsers,
		ErrCodeUnknownType, ErrCodeUserDisabled, ErrCodeUserDoesNotOwnChannel, ErrCodeUserIsBot,
		ErrCodeUserIsRestricted, ErrCodeUserIsUltraRestricted, ErrCodeUserListNotSupplied,
		ErrCodeUserNotFound, ErrCodeUserNotVisible,
	} {
		knownCodes[c] = struct{}{}
	}
}

var retryableCodes = map[ErrorCode]bool{
	ErrCodeClientNetwork:       true,
	ErrCodeTooManyRequests:     true,
	ErrCodeRateLimited:         true,
	ErrCodeRequestTimeout:      true,
	ErrCodeMigrationInProgress: true,
}

// Lookup maps a server-reported error string onto the code table.
// Unrecognised strings, including the empty string, yield ErrCodeUnknown.
func Lookup(s string) ErrorCode {
	if _, ok := knownCodes[ErrorCode(s)]; ok {
		return ErrorCode(s)
	}
	return ErrCodeUnknown
}

// IsRetryableCode reports whether callers may sensibly repeat a call that
// failed with code. The client itself never retries.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
