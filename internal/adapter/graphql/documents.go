package graphql

// GraphQL documents for the ledger service. The aliases (recipientWalletId,
// mutationData) are part of the wire contract: response decoding depends on
// them.

const userDefaultWalletIDDocument = `
query userDefaultWalletId($username: Username!) {
  recipientWalletId: userDefaultWalletId(username: $username)
}`

const lnInvoiceCreateDocument = `
mutation lnInvoiceCreateOnBehalfOfRecipient(
  $walletId: WalletId!
  $amount: SatAmount!
  $descriptionHash: Hex32Bytes
  $memo: Memo
) {
  mutationData: lnInvoiceCreateOnBehalfOfRecipient(
    input: {
      recipientWalletId: $walletId
      amount: $amount
      descriptionHash: $descriptionHash
      memo: $memo
    }
  ) {
    errors {
      message
    }
    invoice {
      paymentRequest
      paymentHash
    }
  }
}`

const boltCardPairDocument = `
mutation PairCard($input: BoltCardPairInput!) {
  boltCardPair(input: $input) {
    errors {
      message
    }
    cardName
    k0
    k1
    k2
    k3
    k4
    lnurlwBase
    protocolName
    protocolVersion
  }
}`

const boltCardWithdrawRequestDocument = `
mutation BoltCardWithdrawRequest($input: BoltCardWithdrawRequestInput!) {
  boltCardWithdrawRequest(input: $input) {
    errors {
      message
    }
    tag
    callback
    k1
    minWithdrawable
    maxWithdrawable
    defaultDescription
  }
}`

const boltCardWithdrawCallbackDocument = `
mutation BoltCardWithdrawCallback($input: BoltCardWithdrawCallbackInput!) {
  boltCardWithdrawCallback(input: $input) {
    errors {
      message
    }
    status
  }
}`

const btcPriceListDocument = `
query btcPriceList($range: PriceGraphRange!) {
  btcPriceList(range: $range) {
    timestamp
    price {
      base
      offset
      currencyUnit
    }
  }
}`
