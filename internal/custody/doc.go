// Package custody implements the inheritance vault: the plan registry, the
// plan lifecycle and the reentrancy-guarded fund transfer protocol.
//
// Engine is the single entry point. Non fund-moving operations run under the
// engine mutex and either commit or leave the plan untouched. Fund-moving
// operations (Redeem, WithdrawAll, WithdrawProtocolShare) additionally hold the
// global Guard, apply their state changes before paying out and restore a
// snapshot of the plan if the payout fails.
package custody
