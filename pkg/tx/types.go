// Package tx assembles TOS transaction payloads and the unsigned frame that
// the source account signs.
//
// Signing frame layout (all integers big-endian):
//
//	version(1) | chain_id(1) | source(32) | tx_type(1) | payload(var) |
//	fee(8) | fee_type(1) | nonce(8) | reference_hash(32) | reference_topoheight(8)
package tx

import "fmt"

// TxVersion is the transaction format version.
type TxVersion uint8

// TxVersionT1 is the only supported version.
const TxVersionT1 TxVersion = 0x01

// TxType is the one-byte transaction type id written after the source key.
type TxType uint8

const (
	TxTypeBurn                      TxType = 0
	TxTypeTransfers                 TxType = 1
	TxTypeMultisig                  TxType = 2
	TxTypeInvokeContract            TxType = 3
	TxTypeDeployContract            TxType = 4
	TxTypeEnergy                    TxType = 5
	TxTypeBindReferrer              TxType = 7
	TxTypeBatchReferralReward       TxType = 8
	TxTypeSetKYC                    TxType = 9
	TxTypeRevokeKYC                 TxType = 10
	TxTypeRenewKYC                  TxType = 11
	TxTypeBootstrapCommittee        TxType = 12
	TxTypeRegisterCommittee         TxType = 13
	TxTypeUpdateCommittee           TxType = 14
	TxTypeEmergencySuspend          TxType = 15
	TxTypeTransferKYC               TxType = 16
	TxTypeAppealKYC                 TxType = 17
	TxTypeUnoTransfers              TxType = 18
	TxTypeShieldTransfers           TxType = 19
	TxTypeUnshieldTransfers         TxType = 20
	TxTypeRegisterName              TxType = 21
	TxTypeEphemeralMessage          TxType = 22
	TxTypeAgentAccount              TxType = 23
	TxTypeCreateEscrow              TxType = 24
	TxTypeDepositEscrow             TxType = 25
	TxTypeReleaseEscrow             TxType = 26
	TxTypeRefundEscrow              TxType = 27
	TxTypeChallengeEscrow           TxType = 28
	TxTypeSubmitVerdict             TxType = 29
	TxTypeDisputeEscrow             TxType = 30
	TxTypeAppealEscrow              TxType = 31
	TxTypeSubmitVerdictByJuror      TxType = 32
	TxTypeRegisterArbiter           TxType = 33
	TxTypeUpdateArbiter             TxType = 34
	TxTypeCommitArbitrationOpen     TxType = 35
	TxTypeCommitVoteRequest         TxType = 36
	TxTypeCommitSelectionCommitment TxType = 37
	TxTypeCommitJurorVote           TxType = 38
	TxTypeSlashArbiter              TxType = 44
	TxTypeRequestArbiterExit        TxType = 45
	TxTypeWithdrawArbiterStake      TxType = 46
	TxTypeCancelArbiterExit         TxType = 47
)

var txTypeNames = map[TxType]string{
	TxTypeBurn:                      "burn",
	TxTypeTransfers:                 "transfers",
	TxTypeMultisig:                  "multisig",
	TxTypeInvokeContract:            "invoke_contract",
	TxTypeDeployContract:            "deploy_contract",
	TxTypeEnergy:                    "energy",
	TxTypeBindReferrer:              "bind_referrer",
	TxTypeBatchReferralReward:       "batch_referral_reward",
	TxTypeSetKYC:                    "set_kyc",
	TxTypeRevokeKYC:                 "revoke_kyc",
	TxTypeRenewKYC:                  "renew_kyc",
	TxTypeBootstrapCommittee:        "bootstrap_committee",
	TxTypeRegisterCommittee:         "register_committee",
	TxTypeUpdateCommittee:           "update_committee",
	TxTypeEmergencySuspend:          "emergency_suspend",
	TxTypeTransferKYC:               "transfer_kyc",
	TxTypeAppealKYC:                 "appeal_kyc",
	TxTypeUnoTransfers:              "uno_transfers",
	TxTypeShieldTransfers:           "shield_transfers",
	TxTypeUnshieldTransfers:         "unshield_transfers",
	TxTypeRegisterName:              "register_name",
	TxTypeEphemeralMessage:          "ephemeral_message",
	TxTypeAgentAccount:              "agent_account",
	TxTypeCreateEscrow:              "create_escrow",
	TxTypeDepositEscrow:             "deposit_escrow",
	TxTypeReleaseEscrow:             "release_escrow",
	TxTypeRefundEscrow:              "refund_escrow",
	TxTypeChallengeEscrow:           "challenge_escrow",
	TxTypeSubmitVerdict:             "submit_verdict",
	TxTypeDisputeEscrow:             "dispute_escrow",
	TxTypeAppealEscrow:              "appeal_escrow",
	TxTypeSubmitVerdictByJuror:      "submit_verdict_by_juror",
	TxTypeRegisterArbiter:           "register_arbiter",
	TxTypeUpdateArbiter:             "update_arbiter",
	TxTypeCommitArbitrationOpen:     "commit_arbitration_open",
	TxTypeCommitVoteRequest:         "commit_vote_request",
	TxTypeCommitSelectionCommitment: "commit_selection_commitment",
	TxTypeCommitJurorVote:           "commit_juror_vote",
	TxTypeSlashArbiter:              "slash_arbiter",
	TxTypeRequestArbiterExit:        "request_arbiter_exit",
	TxTypeWithdrawArbiterStake:      "withdraw_arbiter_stake",
	TxTypeCancelArbiterExit:         "cancel_arbiter_exit",
}

// Valid reports whether t is an assigned type id.
func (t TxType) Valid() bool {
	_, ok := txTypeNames[t]
	return ok
}

func (t TxType) String() string {
	if name, ok := txTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// ParseTxType looks a type up by its snake_case name.
func ParseTxType(name string) (TxType, error) {
	for t, n := range txTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, &PayloadError{Code: ErrInvalidType, Message: fmt.Sprintf("unknown tx type %q", name)}
}

// FeeType selects the asset a fee is paid in.
type FeeType uint8

const (
	FeeTypeTOS    FeeType = 0x00
	FeeTypeEnergy FeeType = 0x01
	FeeTypeUNO    FeeType = 0x02
)

// Valid reports whether f is a known fee type.
func (f FeeType) Valid() bool {
	return f <= FeeTypeUNO
}

// Chain ids per network.
const (
	ChainIDMainnet  uint8 = 0
	ChainIDTestnet  uint8 = 1
	ChainIDStagenet uint8 = 2
	ChainIDDevnet   uint8 = 3
)

// Payload limits enforced by the encoders.
const (
	MaxTransferCount      = 500
	ExtraDataLimitSize    = 128
	ExtraDataLimitSumSize = ExtraDataLimitSize * 32
)

// Field widths.
const (
	HashSize      = 32
	PublicKeySize = 32

	// FrameOverhead is the size of every signing frame field except the payload.
	FrameOverhead = 1 + 1 + PublicKeySize + 1 + 8 + 1 + 8 + HashSize + 8
)
