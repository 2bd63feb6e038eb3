package finance

// GraphQL documents for the domain operations. The remote API multiplexes
// everything through a single endpoint, distinguished by operation name.

const getAccountsQuery = `query GetAccounts {
  accounts {
    id
    displayName
    currentBalance
    deactivatedAt
    type {
      name
    }
    institution {
      name
    }
  }
}`

const getAccountHoldingsQuery = `query GetAccountHoldings($accountId: ID!) {
  portfolio(input: {accountIds: [$accountId]}) {
    aggregateHoldings {
      edges {
        node {
          id
          quantity
          basis
          totalValue
          securityPriceChangeDollars
          securityPriceChangePercent
          holdings {
            id
            name
            ticker
            closingPrice
            quantity
            value
          }
        }
      }
    }
  }
}`

const getTransactionsQuery = `query GetTransactionsList($offset: Int, $limit: Int, $filters: TransactionFilterInput) {
  allTransactions(filters: $filters) {
    totalCount
    results(offset: $offset, limit: $limit) {
      id
      date
      amount
      pending
      notes
      isRecurring
      plaidName
      category {
        id
        name
      }
      merchant {
        id
        name
      }
      account {
        id
        displayName
      }
      tags {
        id
        name
        color
      }
    }
  }
}`

const createTransactionMutation = `mutation Common_CreateTransactionMutation($input: CreateTransactionMutationInput!) {
  createTransaction(input: $input) {
    errors {
      message
    }
    transaction {
      id
    }
  }
}`

const updateTransactionMutation = `mutation Web_TransactionDrawerUpdateTransaction($input: UpdateTransactionMutationInput!) {
  updateTransaction(input: $input) {
    errors {
      message
    }
    transaction {
      id
      amount
      date
      notes
      hideFromReports
      needsReview
    }
  }
}`

const deleteTransactionMutation = `mutation Common_DeleteTransactionMutation($input: DeleteTransactionMutationInput!) {
  deleteTransaction(input: $input) {
    deleted
    errors {
      message
    }
  }
}`

const getBudgetsQuery = `query GetJointPlanningData($startDate: Date!, $endDate: Date!) {
  budgetData(startMonth: $startDate, endMonth: $endDate) {
    monthlyAmountsByCategory {
      category {
        id
        name
      }
      monthlyAmounts {
        month
        plannedCashFlowAmount
        actualAmount
        remainingAmount
      }
    }
  }
}`

const getCashflowQuery = `query Web_GetCashFlowPage($filters: TransactionFilterInput) {
  summary: aggregates(filters: $filters, fillEmptyValues: true) {
    summary {
      sumIncome
      sumExpense
      savings
      savingsRate
    }
  }
  byCategory: aggregates(filters: $filters, groupBy: ["category"]) {
    groupBy {
      category {
        id
        name
      }
    }
    summary {
      sum
    }
  }
}`

const getTransactionTagsQuery = `query GetHouseholdTransactionTags {
  householdTransactionTags {
    id
    name
    color
    order
    transactionCount
  }
}`

const createTransactionTagMutation = `mutation Common_CreateTransactionTag($name: String!, $color: String!) {
  createTransactionTag(input: {name: $name, color: $color}) {
    tag {
      id
      name
      color
      order
      transactionCount
    }
    errors {
      message
    }
  }
}`

const deleteTransactionTagMutation = `mutation Common_DeleteTransactionTag($tagId: ID!) {
  deleteTransactionTag(tagId: $tagId) {
    __typename
  }
}`

const setTransactionTagsMutation = `mutation Web_SetTransactionTags($input: SetTransactionTagsInput!) {
  setTransactionTags(input: $input) {
    errors {
      message
    }
    transaction {
      id
      tags {
        id
      }
    }
  }
}`
