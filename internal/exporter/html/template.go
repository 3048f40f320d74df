package html

// ContractReportTemplate renders a contract index as one page, grouped by entity
const ContractReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>API Contracts - {{.GeneratedAt}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background: #f5f7fa;
            color: #2c3e50;
            line-height: 1.6;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
        }

        header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 40px 20px;
            margin-bottom: 30px;
            border-radius: 8px;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }

        header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
        }

        header p {
            font-size: 1.1em;
            opacity: 0.9;
        }

        .summary {
            background: white;
            padding: 20px;
            border-radius: 8px;
            margin-bottom: 30px;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
        }

        .summary h2 {
            color: #667eea;
            margin-bottom: 15px;
            font-size: 1.5em;
        }

        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 15px;
            margin-top: 15px;
        }

        .stat-card {
            background: #f8f9fa;
            padding: 15px;
            border-radius: 6px;
            border-left: 4px solid #667eea;
        }

        .stat-card .label {
            font-size: 0.9em;
            color: #6c757d;
            margin-bottom: 5px;
        }

        .stat-card .value {
            font-size: 1.8em;
            font-weight: bold;
            color: #2c3e50;
        }

        .endpoint {
            background: white;
            margin-bottom: 20px;
            border-radius: 8px;
            overflow: hidden;
            box-shadow: 0 2px 4px rgba(0, 0, 0, 0.05);
            transition: box-shadow 0.3s ease;
        }

        .endpoint:hover {
            box-shadow: 0 4px 12px rgba(0, 0, 0, 0.1);
        }

        .endpoint-header {
            padding: 20px;
            background: #f8f9fa;
            border-bottom: 1px solid #e9ecef;
            cursor: pointer;
        }

        .endpoint-title {
            display: flex;
            align-items: center;
            gap: 15px;
            margin-bottom: 10px;
        }

        .method-badge {
            display: inline-block;
            padding: 6px 12px;
            border-radius: 4px;
            font-weight: bold;
            font-size: 0.85em;
            text-transform: uppercase;
            letter-spacing: 0.5px;
        }

        .method-get { background: #61affe; color: white; }
        .method-post { background: #49cc90; color: white; }
        .method-put { background: #fca130; color: white; }
        .method-delete { background: #f93e3e; color: white; }
        .method-patch { background: #50e3c2; color: white; }
        .method-default { background: #6c757d; color: white; }

        .endpoint-path {
            font-size: 1.3em;
            font-weight: 600;
            color: #2c3e50;
            font-family: 'Courier New', monospace;
        }

        .endpoint-meta {
            font-size: 0.9em;
            color: #6c757d;
            margin-top: 5px;
        }

        .entity-title {
            font-size: 1.6em;
            color: #764ba2;
            margin: 30px 0 15px;
        }

        .synthesized {
            opacity: 0.75;
            border-left: 4px dashed #fca130;
        }

        .synthesized-badge {
            display: inline-block;
            padding: 2px 6px;
            background: #fca130;
            color: white;
            border-radius: 3px;
            font-size: 0.75em;
            font-weight: bold;
        }

        .tag {
            display: inline-block;
            padding: 2px 8px;
            background: #e7f3ff;
            color: #0066cc;
            border-radius: 3px;
            font-size: 0.85em;
            margin-right: 4px;
        }

        .endpoint-body {
            padding: 20px;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 20px;
        }

        th {
            background: #f8f9fa;
            padding: 12px;
            text-align: left;
            font-weight: 600;
            color: #495057;
            border-bottom: 2px solid #dee2e6;
        }

        td {
            padding: 12px;
            border-bottom: 1px solid #e9ecef;
        }

        .param-type {
            font-family: 'Courier New', monospace;
            color: #e83e8c;
        }

        footer {
            text-align: center;
            padding: 30px 20px;
            color: #6c757d;
            margin-top: 40px;
        }

        .no-endpoints {
            text-align: center;
            padding: 60px 20px;
            color: #6c757d;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>📘 API Contracts</h1>
            <p>Generated on {{.GeneratedAt}} from {{.SourceRoot}}</p>
        </header>

        <div class="summary">
            <h2>Overview</h2>
            <div class="stats">
                <div class="stat-card">
                    <div class="label">Contracts</div>
                    <div class="value">{{.TotalContracts}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Total Endpoints</div>
                    <div class="value">{{.TotalEndpoints}}</div>
                </div>
                <div class="stat-card">
                    <div class="label">Synthesized</div>
                    <div class="value">{{.TotalSynthesized}}</div>
                </div>
            </div>
        </div>

        {{if .Entities}}
            {{range .Entities}}
            <h2 class="entity-title">{{.Entity}}</h2>
            <div class="endpoint-meta">Contract: <strong>{{.Contract}}</strong></div>
            {{range .Rows}}
            <div class="endpoint{{if .Synthesized}} synthesized{{end}}">
                <div class="endpoint-header">
                    <div class="endpoint-title">
                        <span class="method-badge {{methodColor .Verb}}">{{.Verb}}</span>
                        <span class="endpoint-path">{{.Path}}</span>
                        {{if .Synthesized}}<span class="synthesized-badge">SYNTHESIZED</span>{{end}}
                    </div>
                    <div class="endpoint-meta">
                        Operation: <strong>{{.Operation}}</strong>
                        {{range splitTags .Tags}}<span class="tag">{{.}}</span>{{end}}
                    </div>
                </div>
                <div class="endpoint-body">
                    <table>
                        <thead>
                            <tr>
                                <th>Input</th>
                                <th>Output (200)</th>
                            </tr>
                        </thead>
                        <tbody>
                            <tr>
                                <td class="param-type">{{if .Params}}{{.Params}}{{else}}-{{end}}</td>
                                <td class="param-type">{{.Returns}}</td>
                            </tr>
                        </tbody>
                    </table>
                </div>
            </div>
            {{end}}
            {{end}}
        {{else}}
            <div class="no-endpoints">
                <h3>No contracts generated</h3>
                <p>Make sure the source root contains *Controller.java files.</p>
            </div>
        {{end}}

        <footer>
            <p>Generated by <strong>specforge</strong></p>
        </footer>
    </div>
</body>
</html>
`
