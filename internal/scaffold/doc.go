// Package scaffold generates a new MakeABet monorepo from the embedded
// template.
//
// A Generator copies templates/monorepo into the target directory, renders
// files ending in .tmpl with the chosen Options, writes per-app .env.example
// files and, when the merchant module is not wanted, removes MerchantPaths.
package scaffold
